package demo

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// ParseArgs turns command-line arguments into configuration overrides.
// Only flags present on the command line are returned, so they layer on top
// of the environment instead of resetting it.
func ParseArgs(args []string, stderr io.Writer) (overrides map[string]any, list bool, err error) {
	fs := flag.NewFlagSet("fnkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	only := fs.String("only", "", "comma-separated scenarios to run: "+strings.Join(Names(), ","))
	seed := fs.Int64("seed", 1, "seed for every shuffle")
	verbosity := fs.Int("v", 0, "log verbosity (0-4)")
	limit := fs.Int("limit", 100, "last number printed by fizzbuzz")
	fs.BoolVar(&list, "list", false, "list scenarios and exit")

	if err := fs.Parse(args); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, false, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	overrides = map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "only":
			overrides["only"] = *only
		case "seed":
			overrides["seed"] = *seed
		case "v":
			overrides["verbosity"] = *verbosity
		case "limit":
			overrides["fizzbuzz_limit"] = *limit
		}
	})
	return overrides, list, nil
}

// NewLogger returns a logger printing to w at the given verbosity.
func NewLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(w, prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

// Main runs the demo command and returns its exit code: 0 on success, 1 when
// a scenario fails, 2 for bad arguments or configuration.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	overrides, list, err := ParseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if list {
		for _, s := range catalog {
			fmt.Fprintf(stdout, "%-14s %s\n", s.Name, s.Title)
		}
		return 0
	}

	cfg, err := Load(overrides)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log := NewLogger(stderr, cfg.Verbosity).WithName("fnkit")

	runner, err := NewRunner(cfg, stdout, log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := runner.Run(ctx); err != nil {
		log.Error(err, "run failed")
		return 1
	}
	return 0
}
