// Package constraint implements feasibility predicates the solver invokes
// once per iteration, ahead of observation: a predicate returning false
// raises a Contradiction before any further work is done for that step.
//
// UseAllPatterns is the global-coverage predicate. CompileExpr is built on
// github.com/expr-lang/expr, letting a caller
// express a feasibility predicate as a string expression (evaluated
// against the wave's popcount and per-pattern global counts) instead of
// compiling a Go closure — useful when the predicate comes from
// configuration rather than source.
package constraint
