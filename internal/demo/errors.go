package demo

import "errors"

var (
	// ErrInvalidConfig is returned by [Load] and [Config.Validate] when a
	// setting is out of range or names an unknown scenario.
	ErrInvalidConfig = errors.New("demo: invalid configuration")

	// ErrUsage is returned for malformed command-line arguments.
	ErrUsage = errors.New("demo: usage")
)
