package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/jgberry/ruff/internal/config"
)

// ListFiles reports the source files a run over paths would touch.
// The terminal UI uses it to size the progress display up front.
func ListFiles(ctx context.Context, paths []string, opts Options) ([]string, error) {
	return collectSourceFiles(ctx, paths, opts.Config, opts.Root)
}

// collectSourceFiles expands the argument paths into a sorted,
// deduplicated list of .py files. Directories are walked recursively;
// files matching an exclude pattern are skipped.
func collectSourceFiles(ctx context.Context, paths []string, cfg config.Config, root string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if cfg.Excluded(root, path) {
					if d.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
				if d.IsDir() {
					return nil
				}
				if filepath.Ext(path) == ".py" {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		// Explicitly named files bypass the exclude patterns.
		if filepath.Ext(p) == ".py" {
			addFile(p)
		}
	}

	sort.Strings(files)
	return files, nil
}
