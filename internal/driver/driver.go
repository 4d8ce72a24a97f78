// Package driver orchestrates formatting runs: it expands the
// command-line paths into source files, formats them in parallel, and
// consults the disk cache so unchanged files skip the layout pass.
package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jgberry/ruff/internal/cache"
	"github.com/jgberry/ruff/internal/config"
	"github.com/jgberry/ruff/internal/format"
	"github.com/jgberry/ruff/internal/pipeline"
	"github.com/jgberry/ruff/internal/pystring"
	"github.com/jgberry/ruff/internal/source"
)

// Options configures a formatting run.
type Options struct {
	// Check leaves files untouched and only reports which would change.
	Check bool
	// Stdout returns formatted content in the results instead of
	// writing files.
	Stdout bool
	// Jobs caps worker parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Config supplies exclude patterns and the formatter settings.
	Config config.Config
	// Root anchors relative exclude patterns, usually the directory of
	// the loaded ruff.toml.
	Root string
	// Cache is optional; nil disables caching.
	Cache *cache.Cache
	// Sink receives progress events; nil discards them.
	Sink pipeline.ProgressSink
}

// Result captures the outcome for a single file.
type Result struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	Elapsed   time.Duration
}

// FormatOptions converts loaded configuration into format settings.
func FormatOptions(cfg config.Config) format.Options {
	quote := pystring.QuoteDouble
	if cfg.QuoteStyle == "single" {
		quote = pystring.QuoteSingle
	}
	return format.Options{
		MaxWidth:    cfg.LineLength,
		IndentWidth: cfg.IndentWidth,
		Quote:       quote,
		Preview:     cfg.Preview,
	}
}

// FormatPaths formats the provided files or directories (recursively
// collecting .py files). Per-file failures land in the results rather
// than aborting the run; only I/O setup errors and context
// cancellation are returned.
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(ctx, paths, opts.Config, opts.Root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, no mutex needed.
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = formatOne(path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(path string, opts Options) Result {
	start := time.Now()
	res := Result{Path: path}
	emit := func(stage pipeline.Stage, status pipeline.Status, err error) {
		if opts.Sink == nil {
			return
		}
		opts.Sink.OnEvent(pipeline.Event{
			File:    path,
			Stage:   stage,
			Status:  status,
			Changed: res.Changed,
			Err:     err,
			Elapsed: time.Since(start),
		})
	}

	emit(pipeline.StageParse, pipeline.StatusWorking, nil)

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		emit(pipeline.StageParse, pipeline.StatusError, err)
		return res
	}

	fcfg := opts.Config
	key := cache.Key(data, fcfg.LineLength, fcfg.IndentWidth, fcfg.QuoteStyle, fcfg.Preview)
	if opts.Cache != nil {
		var payload cache.Payload
		if ok, _ := opts.Cache.Get(key, &payload); ok {
			res.Cached = true
			res.Changed = payload.Changed
			res.Formatted = payload.Formatted
			res.Elapsed = time.Since(start)
			if !opts.Check && !opts.Stdout && payload.Changed {
				res.Err = writeBack(path, payload.Formatted)
			}
			if res.Err != nil {
				emit(pipeline.StageWrite, pipeline.StatusError, res.Err)
			} else {
				emit(pipeline.StageFormat, pipeline.StatusCached, nil)
			}
			return res
		}
	}

	fileSet := source.NewFileSet()
	sf := fileSet.Get(fileSet.Add(path, data, 0))

	emit(pipeline.StageFormat, pipeline.StatusWorking, nil)

	formatted, err := format.FormatFile(sf, FormatOptions(fcfg))
	if err != nil {
		res.Err = err
		emit(pipeline.StageFormat, pipeline.StatusError, err)
		return res
	}

	// Compare against the normalized content: CRLF and BOM stripping
	// count as changes against the bytes on disk.
	res.Changed = !bytes.Equal(data, formatted)
	res.Formatted = formatted

	if opts.Cache != nil {
		_ = opts.Cache.Put(key, &cache.Payload{Formatted: formatted, Changed: res.Changed})
	}

	if !opts.Check && !opts.Stdout && res.Changed {
		emit(pipeline.StageWrite, pipeline.StatusWorking, nil)
		if err := writeBack(path, formatted); err != nil {
			res.Err = err
			emit(pipeline.StageWrite, pipeline.StatusError, err)
			return res
		}
	}

	res.Elapsed = time.Since(start)
	emit(pipeline.StageFormat, pipeline.StatusDone, nil)
	return res
}

// writeBack preserves the file's permission bits.
func writeBack(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, content, mode.Perm())
}
