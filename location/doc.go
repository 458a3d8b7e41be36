// Package location implements the cell-selection half of observation: given
// a wave's open-cell mask, pick the next cell to collapse.
//
// Every variant reduces to the same shape: compute a per-cell score, then
// argmin (or argmax) it over open cells, ties broken by array order unless
// otherwise noted. lexical, simple/weighted/anti entropy and random are
// each expressed as a Heuristic closure over captured state (the
// preferences field) — the solver depends only on the Heuristic
// capability, never on a concrete variant. Spiral and Hilbert are not
// Heuristics themselves: they build a preferences field of curve ranks to
// pass to Random.
//
// No variant draws random numbers itself; Random's randomness comes only
// from the caller-supplied preferences field, so runs are reproducible.
package location
