package solver

import "errors"

// Three failure kinds distinguished by cause, not by origin.
var (
	// ErrContradiction indicates the constraint graph admits no solution
	// from the current state. Recoverable via backtracking when enabled;
	// otherwise surfaced to the caller.
	ErrContradiction = errors.New("solver: contradiction, no admissible assignment from this state")

	// ErrTimedOut indicates the configured depth limit was exceeded.
	// Never recoverable within the solver; always surfaced.
	ErrTimedOut = errors.New("solver: depth limit exceeded")

	// ErrStopEarly indicates the context installed with WithContext was
	// cancelled or hit its deadline (an observer may cancel it to stop the
	// solve). Always surfaced; OnFinal is not emitted.
	ErrStopEarly = errors.New("solver: stopped early by observer request")

	// ErrAssertion marks a programmer-error class failure — a heuristic
	// returned a resolved or empty cell, or the adjacency table's shape
	// disagrees with P or D — never to be confused with ErrContradiction.
	ErrAssertion = errors.New("solver: assertion failed, caller-supplied heuristic or table violated a precondition")
)
