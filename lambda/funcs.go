package lambda

import (
	"maps"

	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// DefaultFunctions returns the function table templates may call when
// [Options.Functions] is nil. The map is a fresh copy on every call.
//
//	lambda.MustCompile("max($, $$) - min($, $$)")
//	lambda.MustCompile(`join(", ", [upper($), lower($$)])`)
func DefaultFunctions() map[string]function.Function {
	return maps.Clone(defaultFunctions)
}

var defaultFunctions = map[string]function.Function{
	// numbers
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"floor":  stdlib.FloorFunc,
	"int":    stdlib.IntFunc,
	"log":    stdlib.LogFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"pow":    stdlib.PowFunc,
	"signum": stdlib.SignumFunc,

	// strings
	"format": stdlib.FormatFunc,
	"lower":  stdlib.LowerFunc,
	"strlen": stdlib.StrlenFunc,
	"substr": stdlib.SubstrFunc,
	"upper":  stdlib.UpperFunc,

	// collections
	"concat":  stdlib.ConcatFunc,
	"join":    stdlib.JoinFunc,
	"length":  stdlib.LengthFunc,
	"range":   stdlib.RangeFunc,
	"reverse": stdlib.ReverseListFunc,
}
