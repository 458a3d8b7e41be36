// Package propagate implements the two interchangeable constraint-
// propagation algorithms: Bulk recomputes a fixed point from scratch each
// call via a boolean matrix-multiply-style restriction; Incremental
// amortizes work across many small bans using a compatibility counter
// tensor and a work stack, only re-examining cells whose neighbors
// changed.
//
// Both operate on the same *wave.Wave and *adjacency.Table so that a
// caller can switch propagators without touching the rest of the solver;
// both must agree on the fixed point they reach from the same starting
// state.
package propagate
