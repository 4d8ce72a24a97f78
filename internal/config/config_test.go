package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeToml(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "ruff.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.LineLength != 88 {
		t.Fatalf("LineLength = %d, want 88", cfg.LineLength)
	}
	if cfg.IndentWidth != 4 {
		t.Fatalf("IndentWidth = %d, want 4", cfg.IndentWidth)
	}
	if cfg.QuoteStyle != "double" {
		t.Fatalf("QuoteStyle = %q, want double", cfg.QuoteStyle)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeToml(t, t.TempDir(), `
line-length = 100
quote-style = "single"
preview = true
exclude = ["generated_*.py"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LineLength != 100 {
		t.Fatalf("LineLength = %d, want 100", cfg.LineLength)
	}
	if cfg.IndentWidth != 4 {
		t.Fatalf("IndentWidth = %d, want default 4", cfg.IndentWidth)
	}
	if cfg.QuoteStyle != "single" {
		t.Fatalf("QuoteStyle = %q, want single", cfg.QuoteStyle)
	}
	if !cfg.Preview {
		t.Fatal("Preview not set")
	}
	if len(cfg.Exclude) != 1 {
		t.Fatalf("Exclude = %v", cfg.Exclude)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad quote style", `quote-style = "backtick"`},
		{"zero line length", `line-length = 0`},
		{"negative indent", `indent-width = -2`},
		{"unknown key", `line-width = 80`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeToml(t, t.TempDir(), tt.content)
			if _, err := Load(path); err == nil {
				t.Fatalf("Load accepted %q", tt.content)
			}
		})
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeToml(t, root, `line-length = 72`)
	nested := filepath.Join(root, "pkg", "sub")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !ok {
		t.Fatal("Find missed the config")
	}
	if filepath.Dir(path) != root {
		t.Fatalf("Find = %q, want file in %q", path, root)
	}
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	cfg, path, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if path != "" {
		t.Fatalf("path = %q, want empty", path)
	}
	if cfg.LineLength != 88 {
		t.Fatalf("LineLength = %d, want default", cfg.LineLength)
	}
}

func TestExcluded(t *testing.T) {
	cfg := Default()
	cfg.Exclude = []string{"generated_*.py", "vendor/*"}
	root := "/project"

	tests := []struct {
		path string
		want bool
	}{
		{"/project/generated_models.py", true},
		{"/project/vendor/lib.py", true},
		{"/project/app.py", false},
		{"/project/sub/generated_x.py", true},
	}
	for _, tt := range tests {
		if got := cfg.Excluded(root, tt.path); got != tt.want {
			t.Fatalf("Excluded(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
