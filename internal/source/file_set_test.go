package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddAndGet(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("a.py", []byte("x = 1\n"), 0)
	sf := fs.Get(id)
	if sf.Path != "a.py" {
		t.Fatalf("Path = %q, want a.py", sf.Path)
	}
	if string(sf.Content) != "x = 1\n" {
		t.Fatalf("Content = %q", sf.Content)
	}
	got, ok := fs.GetByPath("./a.py")
	if !ok || got.ID != id {
		t.Fatalf("GetByPath = %v/%v, want id %d", got, ok, id)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.py")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x = 1\r\ny = 2\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	sf := fs.Get(id)
	if string(sf.Content) != "x = 1\ny = 2\n" {
		t.Fatalf("Content = %q, want LF-normalized without BOM", sf.Content)
	}
	if sf.Flags&FileHadBOM == 0 {
		t.Fatal("FileHadBOM not set")
	}
	if sf.Flags&FileNormalizedCRLF == 0 {
		t.Fatal("FileNormalizedCRLF not set")
	}
}

func TestAddVirtualSetsFlag(t *testing.T) {
	fs := NewFileSet()
	sf := fs.Get(fs.AddVirtual("stdin", []byte("pass\n")))
	if sf.Flags&FileVirtual == 0 {
		t.Fatal("FileVirtual not set")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("a.py", []byte("ab\ncd\n"), 0)

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1}, // a
		{1, 1, 2}, // b
		{2, 1, 3}, // newline stays on its own line
		{3, 2, 1}, // c
		{4, 2, 2}, // d
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Fatalf("Resolve(off %d) = %d:%d, want %d:%d",
				tt.off, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Fatalf("Cover = %v, want 2-10", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("Cover across files = %v, want unchanged", got)
	}
}
