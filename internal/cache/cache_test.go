package cache

import (
	"testing"
)

func TestKeyChangesWithContentAndOptions(t *testing.T) {
	base := Key([]byte("x = 1\n"), 88, 4, "double", false)

	if Key([]byte("x = 2\n"), 88, 4, "double", false) == base {
		t.Fatal("different content produced the same key")
	}
	if Key([]byte("x = 1\n"), 100, 4, "double", false) == base {
		t.Fatal("different line length produced the same key")
	}
	if Key([]byte("x = 1\n"), 88, 2, "double", false) == base {
		t.Fatal("different indent width produced the same key")
	}
	if Key([]byte("x = 1\n"), 88, 4, "single", false) == base {
		t.Fatal("different quote style produced the same key")
	}
	if Key([]byte("x = 1\n"), 88, 4, "double", true) == base {
		t.Fatal("preview flag produced the same key")
	}
	if Key([]byte("x = 1\n"), 88, 4, "double", false) != base {
		t.Fatal("identical inputs produced different keys")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}

	key := Key([]byte("x = 1\n"), 88, 4, "double", false)
	in := &Payload{Formatted: []byte("x = 1\n"), Changed: false}
	if err := c.Put(key, in); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var out Payload
	ok, err := c.Get(key, &out)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Get missed a stored payload")
	}
	if string(out.Formatted) != "x = 1\n" {
		t.Fatalf("Formatted = %q", out.Formatted)
	}
	if out.Changed {
		t.Fatal("Changed flag flipped")
	}
}

func TestGetMiss(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	var out Payload
	ok, err := c.Get(Key([]byte("missing"), 88, 4, "double", false), &out)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Fatal("Get reported a hit for a missing key")
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	key := Key([]byte("x"), 88, 4, "double", false)
	if err := c.Put(key, &Payload{}); err != nil {
		t.Fatalf("nil Put failed: %v", err)
	}
	var out Payload
	ok, err := c.Get(key, &out)
	if err != nil || ok {
		t.Fatalf("nil Get = %v/%v, want miss without error", ok, err)
	}
}
