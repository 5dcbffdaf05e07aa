package demo

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

// EnvPrefix marks the environment variables read by [Load]:
// FNKIT_FIZZBUZZ_LIMIT sets fizzbuzz_limit, FNKIT_ONLY=cards,fuzzy sets only.
const EnvPrefix = "FNKIT_"

// Config holds the settings of a demo run.
type Config struct {
	// FizzBuzzLimit is the last number printed by the fizzbuzz scenario.
	FizzBuzzLimit int `koanf:"fizzbuzz_limit" validate:"min=1,max=1000"`

	// SquaresN is the bound of the sum of squares computed with lambdas.
	SquaresN int `koanf:"squares_n" validate:"min=0,max=10000"`

	SearchTerm string   `koanf:"search_term" validate:"required"`
	Names      []string `koanf:"names" validate:"min=1,dive,required"`

	// Players receive two cards each; seven leaves enough of the deck for
	// the community cards and burns.
	Players []string `koanf:"players" validate:"min=1,max=7,dive,required"`

	// Seed drives every shuffle so runs are reproducible.
	Seed int64 `koanf:"seed"`

	Verbosity int `koanf:"verbosity" validate:"min=0,max=4"`

	// Only restricts the run to the named scenarios. Empty runs them all.
	Only []string `koanf:"only" validate:"dive,scenario"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	_ = v.RegisterValidation("scenario", func(fl validator.FieldLevel) bool {
		return slices.Contains(Names(), fl.Field().String())
	})
	return v
}

// Validate checks every field and reports all violations at once.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func defaults() map[string]any {
	return map[string]any{
		"fizzbuzz_limit": 100,
		"squares_n":      100,
		"search_term":    "cle",
		"names": []string{
			"Timothée", "Beyoncé", "Penélope", "Renée", "Clémence", "Zoë",
			"Chloë", "Øyvind", "Žofia", "Michał", "Clémentine",
		},
		"players":   []string{"Douglas Crockford", "Marc Andreessen", "John-David Dalton"},
		"seed":      1,
		"verbosity": 0,
		"only":      []string{},
	}
}

// DefaultConfig returns the built-in configuration, ignoring the
// environment.
func DefaultConfig() Config {
	cfg, err := load(false, nil)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load layers the built-in defaults, then FNKIT_* environment variables,
// then overrides, and validates the result. List settings given as strings
// are split on commas.
func Load(overrides map[string]any) (Config, error) {
	return load(true, overrides)
}

func load(withEnv bool, overrides map[string]any) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, err
	}
	if withEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return Config{}, err
		}
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
