// Package cache stores formatted output on disk keyed by a digest of
// the source content and the formatter configuration. A cache hit
// means the file was already formatted with identical settings, so the
// formatter can skip the layout pass entirely.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Schema version, incremented when Payload changes shape.
const schemaVersion uint16 = 1

// Digest identifies a (content, configuration) pair.
type Digest [sha256.Size]byte

// Key computes the digest for a source blob under the given settings.
// Every option that can change the output must be mixed in, otherwise
// stale results would survive configuration edits.
func Key(content []byte, lineLength, indentWidth int, quoteStyle string, preview bool) Digest {
	h := sha256.New()
	_, _ = h.Write(content)

	var opts [10]byte
	binary.LittleEndian.PutUint32(opts[0:4], uint32(lineLength))
	binary.LittleEndian.PutUint32(opts[4:8], uint32(indentWidth))
	if quoteStyle == "single" {
		opts[8] = 1
	}
	if preview {
		opts[9] = 1
	}
	_, _ = h.Write(opts[:])

	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Payload is the cached result for one file.
type Payload struct {
	Schema    uint16
	Formatted []byte
	// Changed records whether the formatted output differed from the
	// input, so --check can answer from cache without comparing.
	Changed bool
}

// Cache is a disk-backed store under the XDG cache directory.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes the cache at the standard location for app.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenAt initializes the cache in an explicit directory. Used by tests.
func OpenAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "fmt", hexKey+".mp")
}

// Put serializes and writes a payload. The write is atomic: a temp
// file in the same directory is renamed over the target.
func (c *Cache) Put(key Digest, payload *Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = schemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "failed to remove temp file: %v\n", rmErr)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. It returns false on a miss or when the stored
// schema does not match the current one.
func (c *Cache) Get(key Digest, out *Payload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		// Corrupt entries are treated as misses.
		return false, nil
	}
	if out.Schema != schemaVersion {
		return false, nil
	}
	return true, nil
}
