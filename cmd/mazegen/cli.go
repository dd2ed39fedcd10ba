package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// exitError carries a process exit code.
type exitError struct {
	Code    int
	Message string
}

func (e *exitError) Error() string {
	return e.Message
}

// parseArgs merges defaults, the optional HCL file and explicit flags, in
// that order. It reports true when the program should exit cleanly.
func parseArgs(args []string, output io.Writer) (*config, bool, error) {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
mazegen - generate, carve and check flat or cube mazes.

Usage:
  mazegen [options] [CONFIG.hcl]

Options:
`)
		fs.PrintDefaults()
	}

	cfg := defaultConfig()
	configPath := fs.String("config", "", "Path to an HCL config file.")
	mode := fs.String("mode", "flat", "Maze layout: 'flat' or 'cube'.")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "Cells per grid side.")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; 0 selects the default seed.")
	fs.StringVar(&cfg.Carver, "carver", cfg.Carver, "Carver: 'prim', 'frontier' or 'none'.")
	fs.BoolVar(&cfg.FullCoverage, "full-coverage", cfg.FullCoverage, "Require every cell visited for validity.")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "Colour the rendering.")
	fs.BoolVar(&cfg.Path, "path", cfg.Path, "Mark the start-to-goal path.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &exitError{Code: 2, Message: err.Error()}
	}

	path := *configPath
	if path == "" && fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	// The file applies below explicitly set flags, so start again from
	// defaults, apply the file, then replay the flags the user passed.
	if path != "" {
		fc, err := loadConfigFile(path)
		if err != nil {
			return nil, false, err
		}
		fileCfg := defaultConfig()
		if err := fc.apply(&fileCfg); err != nil {
			return nil, false, fmt.Errorf("%s: %w", path, err)
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		merge(&fileCfg, &cfg, set)
		cfg = fileCfg
	}

	if path == "" || setFlag(fs, "mode") {
		m, err := parseMode(*mode)
		if err != nil {
			return nil, false, &exitError{Code: 2, Message: err.Error()}
		}
		cfg.Mode = m
	}
	if err := cfg.validate(); err != nil {
		return nil, false, &exitError{Code: 2, Message: err.Error()}
	}
	return &cfg, false, nil
}

func setFlag(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// merge copies the flag-bound fields named in set from src into dst.
func merge(dst, src *config, set map[string]bool) {
	if set["size"] {
		dst.Size = src.Size
	}
	if set["seed"] {
		dst.Seed = src.Seed
	}
	if set["carver"] {
		dst.Carver = src.Carver
	}
	if set["full-coverage"] {
		dst.FullCoverage = src.FullCoverage
	}
	if set["color"] {
		dst.Color = src.Color
	}
	if set["path"] {
		dst.Path = src.Path
	}
	if set["log-level"] {
		dst.LogLevel = src.LogLevel
	}
	if set["log-format"] {
		dst.LogFormat = src.LogFormat
	}
}
