// Package structure provides vocabulary terms for code structure entities.
//
// The structure vocabulary covers the static shape of Elixir code: modules,
// functions and their clauses, parameters, behaviours and callbacks, call
// edges, anonymous functions and closures, macro invocations, module
// dependency directives, control-flow expressions, and operators.
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/semcode/vocabulary/structure"
package structure
