package lambda

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/hasbyte1/go-fnkit/arr"
)

// DefaultMarker is the placeholder rune used by [DefaultOptions].
const DefaultMarker = '$'

// paramPrefix names the variable a run of k markers is rewritten to.
const paramPrefix = "arg_"

// Options configures a [Compiler].
type Options struct {
	// Marker is the placeholder rune. A run of k markers refers to the
	// k-th argument. Letters, digits, '_', '-', quotes and whitespace are
	// rejected because they would collide with the expression syntax.
	Marker rune

	// Functions is the table of callable functions. nil selects
	// [DefaultFunctions]; an empty non-nil map disables function calls.
	Functions map[string]function.Function

	// Logger receives compile diagnostics: V(1) for every compiled
	// template, V(2) for cache hits. The zero Logger discards.
	Logger logr.Logger

	// DisableCache turns off sharing of compiled lambdas between equal
	// templates.
	DisableCache bool
}

// DefaultOptions returns the options used by the package-level [Compile].
func DefaultOptions() Options {
	return Options{
		Marker: DefaultMarker,
		Logger: logr.Discard(),
	}
}

// Compiler turns templates into [Lambda] values and caches them by template.
//
// All Compiler methods are safe for concurrent use by multiple goroutines.
type Compiler struct {
	marker  rune
	funcs   map[string]function.Function
	log     logr.Logger
	caching bool

	mu    sync.RWMutex
	cache map[string]*Lambda
}

// NewCompiler validates opts and returns a ready Compiler.
func NewCompiler(opts Options) (*Compiler, error) {
	m := opts.Marker
	if m == 0 || m == '_' || m == '-' || m == '"' || m == '\'' ||
		unicode.IsLetter(m) || unicode.IsDigit(m) || unicode.IsSpace(m) || !unicode.IsPrint(m) {
		return nil, fmt.Errorf("%w: marker %q", ErrInvalidOption, m)
	}
	funcs := opts.Functions
	if funcs == nil {
		funcs = DefaultFunctions()
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Compiler{
		marker:  m,
		funcs:   funcs,
		log:     log.WithName("lambda"),
		caching: !opts.DisableCache,
		cache:   make(map[string]*Lambda),
	}, nil
}

// Compile parses template into a [Lambda] whose arity is the longest run of
// the marker rune. Errors wrap [ErrInvalidExpression].
func (c *Compiler) Compile(template string) (*Lambda, error) {
	if l, ok := c.cached(template); ok {
		c.log.V(2).Info("cache hit", "template", template)
		return l, nil
	}

	arity := MaxRun(template, c.marker)
	src := c.rewrite(template)
	expr, diags := hclsyntax.ParseExpression([]byte(src), "lambda", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidExpression, template, diags.Error())
	}
	if err := c.check(expr, arity); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidExpression, template, err)
	}

	l := &Lambda{
		template: template,
		arity:    arity,
		expr:     expr,
		funcs:    c.funcs,
	}
	if c.caching {
		c.mu.Lock()
		c.cache[template] = l
		c.mu.Unlock()
	}
	c.log.V(1).Info("compiled", "template", template, "arity", arity)
	return l, nil
}

// CompileFragments assembles a template from pieces and compiles it.
//
// fragments and fillers are zipped pairwise (fragment, filler, fragment,
// filler, ...), absent entries (nil and "") are dropped, and the rest are
// concatenated with [fmt.Sprint]. Numeric zero and false are kept.
//
//	c.CompileFragments([]string{"$ * ", " + $$"}, 2) // same as "$ * 2 + $$"
func (c *Compiler) CompileFragments(fragments []string, fillers ...any) (*Lambda, error) {
	parts := arr.Map(fragments, func(s string, _ int) any { return s })
	flat := arr.FlatMap(arr.ZipLongest(parts, fillers), func(p arr.Pair[any, any], _ int) []any {
		return []any{p.First, p.Second}
	})
	var b strings.Builder
	for _, piece := range arr.Compact(flat) {
		fmt.Fprint(&b, piece)
	}
	return c.Compile(b.String())
}

func (c *Compiler) cached(template string) (*Lambda, bool) {
	if !c.caching {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	l, ok := c.cache[template]
	return l, ok
}

// rewrite replaces every run of k markers with a reference to argument k.
// In expression context the reference is parenthesised, so neighbouring
// characters such as '-' are not read as part of the name; inside a quoted
// string it becomes a ${...} interpolation.
func (c *Compiler) rewrite(template string) string {
	type frame struct {
		quoted bool
		depth  int // open braces, expression frames only
	}
	var (
		b       strings.Builder
		stack   = []frame{{}}
		run     int
		prev    rune
		escaped bool
	)
	flush := func() {
		if run == 0 {
			return
		}
		if stack[len(stack)-1].quoted {
			b.WriteString("${" + paramName(run) + "}")
		} else {
			b.WriteString("(" + paramName(run) + ")")
		}
		run, prev = 0, 0
	}

	for _, r := range template {
		if r == c.marker {
			run++
			escaped = false
			continue
		}
		flush()
		b.WriteRune(r)

		top := &stack[len(stack)-1]
		switch {
		case top.quoted && escaped:
			escaped = false
		case top.quoted && r == '\\':
			escaped = true
		case top.quoted && r == '"':
			stack = stack[:len(stack)-1]
		case top.quoted && r == '{' && (prev == '$' || prev == '%'):
			stack = append(stack, frame{depth: 1})
		case !top.quoted && r == '"':
			stack = append(stack, frame{quoted: true})
		case !top.quoted && r == '{':
			top.depth++
		case !top.quoted && r == '}':
			top.depth--
			if top.depth <= 0 && len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
		prev = r
	}
	flush()
	return b.String()
}

// check rejects free variables that are not placeholders and calls to
// functions outside the table, reporting all of them at once.
func (c *Compiler) check(expr hclsyntax.Expression, arity int) error {
	var result *multierror.Error
	for _, traversal := range expr.Variables() {
		name := traversal.RootName()
		if k, ok := paramIndex(name); !ok || k > arity {
			result = multierror.Append(result, fmt.Errorf("unknown name %q", name))
		}
	}
	hclsyntax.VisitAll(expr, func(node hclsyntax.Node) hcl.Diagnostics {
		if call, ok := node.(*hclsyntax.FunctionCallExpr); ok {
			if _, known := c.funcs[call.Name]; !known {
				result = multierror.Append(result, fmt.Errorf("unknown function %q", call.Name))
			}
		}
		return nil
	})
	return result.ErrorOrNil()
}

func paramName(k int) string { return paramPrefix + strconv.Itoa(k) }

func paramIndex(name string) (int, bool) {
	digits, ok := strings.CutPrefix(name, paramPrefix)
	if !ok {
		return 0, false
	}
	k, err := strconv.Atoi(digits)
	return k, err == nil && k > 0
}

// Lambda is a compiled template. It is immutable and safe for concurrent
// use; equal templates compiled by the same [Compiler] share one Lambda.
type Lambda struct {
	template string
	arity    int
	expr     hclsyntax.Expression
	funcs    map[string]function.Function
}

// Arity is the number of positional arguments the template refers to.
func (l *Lambda) Arity() int { return l.arity }

// Template returns the source the lambda was compiled from.
func (l *Lambda) Template() string { return l.template }

// String implements [fmt.Stringer].
func (l *Lambda) String() string { return l.template }

// Invoke evaluates the template with args bound positionally. Missing
// arguments are null and extra arguments are ignored. Errors wrap
// [ErrEvaluation].
func (l *Lambda) Invoke(args ...any) (any, error) {
	vars := make(map[string]cty.Value, l.arity)
	for k := 1; k <= l.arity; k++ {
		v := cty.NullVal(cty.DynamicPseudoType)
		if k <= len(args) {
			var err error
			if v, err = ToValue(args[k-1]); err != nil {
				return nil, fmt.Errorf("%w: argument %d: %w", ErrEvaluation, k, err)
			}
		}
		vars[paramName(k)] = v
	}

	val, diags := l.expr.Value(&hcl.EvalContext{Variables: vars, Functions: l.funcs})
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %q: %s", ErrEvaluation, l.template, diags.Error())
	}
	out, err := FromValue(val)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrEvaluation, l.template, err)
	}
	return out, nil
}

var std = mustCompiler(NewCompiler(DefaultOptions()))

func mustCompiler(c *Compiler, err error) *Compiler {
	if err != nil {
		panic(err)
	}
	return c
}

// Compile compiles template with the default '$' marker and function table.
//
//	square := lambda.MustCompile("$ * $")
//	v, _ := square.Invoke(3) // 9
func Compile(template string) (*Lambda, error) { return std.Compile(template) }

// CompileFragments is [Compiler.CompileFragments] on the default compiler.
func CompileFragments(fragments []string, fillers ...any) (*Lambda, error) {
	return std.CompileFragments(fragments, fillers...)
}

// MustCompile is like [Compile] but panics if the template is invalid.
// Use it for templates that are constants of the program.
func MustCompile(template string) *Lambda {
	l, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return l
}
