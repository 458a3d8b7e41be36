package constraint

import "errors"

// ErrCompileFailed wraps an expr-lang compilation failure for an
// expression-based predicate.
var ErrCompileFailed = errors.New("constraint: failed to compile expression")

// ErrEvalType indicates a compiled expression evaluated to something other
// than a bool.
var ErrEvalType = errors.New("constraint: expression did not evaluate to a bool")
