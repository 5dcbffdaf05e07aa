package lambda

import "errors"

// Sentinel errors returned by the compiler and by compiled lambdas.
//
// Use [errors.Is] for comparisons:
//
//	_, err := lambda.Compile("$ ++ $")
//	if errors.Is(err, lambda.ErrInvalidExpression) {
//	    // template body does not parse
//	}
var (
	// ErrInvalidExpression is returned at compile time when a template does
	// not parse, refers to a name other than its placeholders, or calls a
	// function missing from the compiler's function table.
	ErrInvalidExpression = errors.New("lambda: invalid expression")

	// ErrEvaluation is returned by [Lambda.Invoke] when the arguments cannot
	// be converted or the expression fails for the given values (for example
	// adding a number to a list).
	ErrEvaluation = errors.New("lambda: evaluation failed")

	// ErrInvalidOption is returned by [NewCompiler] for an unusable marker.
	ErrInvalidOption = errors.New("lambda: invalid option value")
)
