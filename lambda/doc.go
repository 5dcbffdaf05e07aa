// Package lambda compiles short placeholder templates into callable values.
//
// A template is an expression in which runs of a marker rune stand for
// positional arguments: a single '$' is the first argument, "$$" the second,
// and so on. The compiled [Lambda] takes as many arguments as the longest run:
//
//	square := lambda.MustCompile("$ * $")      // arity 1
//	add    := lambda.MustCompile("$ + $$")     // arity 2
//	v, _   := add.Invoke(2, 5)                 // 7
//
// Arguments that no run refers to are accepted and ignored.
//
// # Expression language
//
// Templates are parsed as HCL native-syntax expressions (arithmetic,
// comparison, logic, the conditional operator, tuple and object
// constructors, indexing, for expressions) and evaluated by the cty
// interpreter. Only the functions in [DefaultFunctions] (or the table
// passed in [Options]) can be called. Nothing is compiled to Go, loaded or
// executed outside that interpreter.
//
// Templates are still code: an expression can allocate and loop as much as
// the language allows. Do not compile templates taken from untrusted input.
//
// Every marker rune in the template is a placeholder, including one inside a
// quoted string, where the argument is interpolated as text:
//
//	lambda.MustCompile(`"Hello, $!"`).Invoke("Ada") // "Hello, Ada!"
//
// With the default '$' marker a template cannot spell an interpolation
// sequence of its own; pick another marker to use them:
//
//	c.Compile(`"${upper(#)}!"`) // with Options.Marker = '#'
//
// # Errors
//
// Problems in the template itself surface from [Compile] as
// [ErrInvalidExpression]; a Lambda that compiled is always invokable.
// [Lambda.Invoke] returns [ErrEvaluation] when the supplied values do not fit
// the expression, for example a string where a number is required.
//
// # Fragments
//
// [CompileFragments] builds a template from pieces, dropping empty ones:
//
//	l, _ := lambda.CompileFragments([]string{"$", "", "+ $$"}) // "$+ $$"
package lambda
