package demo

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"

	"github.com/hasbyte1/go-fnkit/arr"
	"github.com/hasbyte1/go-fnkit/lambda"
)

// Runner executes the configured scenarios and writes their output.
type Runner struct {
	cfg      Config
	out      io.Writer
	log      logr.Logger
	compiler *lambda.Compiler
}

// NewRunner validates cfg and prepares a Runner writing to out. The zero
// Logger discards.
func NewRunner(cfg Config, out io.Writer, log logr.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	opts := lambda.DefaultOptions()
	opts.Logger = log.WithName("lambda")
	compiler, err := lambda.NewCompiler(opts)
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, out: out, log: log, compiler: compiler}, nil
}

// Scenarios returns the scenarios selected by the configuration, in run order.
func (r *Runner) Scenarios() []Scenario {
	if len(r.cfg.Only) == 0 {
		return slices.Clone(catalog)
	}
	return arr.Filter(catalog, func(s Scenario, _ int) bool {
		return slices.Contains(r.cfg.Only, s.Name)
	})
}

// Run executes every selected scenario, even after one fails, and returns
// the failures combined. It stops early only when ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	var result *multierror.Error
	for _, s := range r.Scenarios() {
		if err := ctx.Err(); err != nil {
			return multierror.Append(result, err).ErrorOrNil()
		}

		log := r.log.WithValues("scenario", s.Name)
		log.V(1).Info("running scenario")

		if _, err := fmt.Fprintf(r.out, "== %s ==\n", s.Title); err != nil {
			return multierror.Append(result, err).ErrorOrNil()
		}
		if err := s.run(r, r.out); err != nil {
			log.Error(err, "scenario failed")
			result = multierror.Append(result, fmt.Errorf("%s: %w", s.Name, err))
		}
	}
	return result.ErrorOrNil()
}

// rand returns a generator seeded from the configuration, so each scenario
// shuffles the same way on every run.
func (r *Runner) rand() *rand.Rand {
	return rand.New(rand.NewSource(r.cfg.Seed))
}
