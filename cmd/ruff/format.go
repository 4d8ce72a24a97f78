package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jgberry/ruff/internal/cache"
	"github.com/jgberry/ruff/internal/config"
	"github.com/jgberry/ruff/internal/driver"
)

var formatCmd = &cobra.Command{
	Use:   "format [flags] <path> [path...]",
	Short: "Format Python source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().Bool("check", false, "check if files are properly formatted without rewriting them")
	formatCmd.Flags().String("output-format", "text", "output format (text|json)")
	formatCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	formatCmd.Flags().Bool("no-cache", false, "disable the formatting cache")
	formatCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = number of CPUs)")
	formatCmd.Flags().String("ui", "auto", "live progress display (auto|on|off)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("output-format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("format: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("format: --stdout is only supported with text output")
	}
	wantUI, err := resolveUI(uiValue)
	if err != nil {
		return err
	}

	cfg, root, err := loadConfig(configPath, args)
	if err != nil {
		return err
	}

	opts := driver.Options{
		Check:  check,
		Stdout: writeToStdout,
		Jobs:   jobs,
		Config: cfg,
		Root:   root,
	}
	if !noCache {
		if c, cacheErr := cache.Open("ruff"); cacheErr == nil {
			opts.Cache = c
		}
	}

	useUI := wantUI && !writeToStdout && outputFormat == "text"
	var results []driver.Result
	if useUI {
		results, err = runFormatWithUI(cmd.Context(), args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	switch outputFormat {
	case "text":
		if writeToStdout {
			renderStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("format: failed to format some files")
			}
			return nil
		}
		renderText(results, check, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderJSON(results, check, &hasErrors, &hasChanges); err != nil {
			return err
		}
	default:
		return fmt.Errorf("format: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("format: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("format: formatting changes required")
	}
	return nil
}

// resolveUI decides whether the live progress display runs; "auto"
// enables it only when stdout is a terminal.
func resolveUI(value string) (bool, error) {
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(os.Stdout), nil
	}
	return false, fmt.Errorf("format: invalid --ui value %q (expected auto|on|off)", value)
}

// loadConfig honors an explicit --config path, otherwise discovers the
// nearest ruff.toml above the first argument.
func loadConfig(configPath string, args []string) (config.Config, string, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, "", err
		}
		return cfg, filepath.Dir(configPath), nil
	}

	start := "."
	if len(args) > 0 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			start = args[0]
		} else {
			start = filepath.Dir(args[0])
		}
	}
	cfg, path, err := config.Discover(start)
	if err != nil {
		return config.Config{}, "", err
	}
	root := ""
	if path != "" {
		root = filepath.Dir(path)
	}
	return cfg, root, nil
}

func renderStdout(results []driver.Result, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "format: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderText(results []driver.Result, check, quiet bool, hasErrors, hasChanges *bool) {
	var changed int
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "format: %s: %v\n", res.Path, res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		*hasChanges = true
		changed++
		if quiet {
			continue
		}
		if check {
			fmt.Fprintf(os.Stdout, "would reformat %s\n", res.Path)
		} else {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
	if !quiet && !check && changed == 0 && !*hasErrors {
		fmt.Fprintf(os.Stdout, "%d files left unchanged\n", len(results))
	}
}

func renderJSON(results []driver.Result, check bool, hasErrors, hasChanges *bool) error {
	type jsonResult struct {
		Path    string `json:"path"`
		Changed bool   `json:"changed"`
		Cached  bool   `json:"cached,omitempty"`
		Error   string `json:"error,omitempty"`
		Check   bool   `json:"check"`
	}

	out := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{
			Path:    res.Path,
			Changed: res.Changed,
			Cached:  res.Cached,
			Check:   check,
		}
		if res.Err != nil {
			*hasErrors = true
			jr.Error = res.Err.Error()
		}
		if res.Changed {
			*hasChanges = true
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
