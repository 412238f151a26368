// Package solver decides whether a lights out board can be switched all off.
//
// The oracle runs a breadth-first search over the configurations reachable
// from the input board. Every cell is an edge: toggling it yields the next
// configuration. A configuration is recorded as visited when it is enqueued,
// which keeps each one in the frontier at most once.
//
// The search stops with a positive answer at the first dequeued board that is
// all off, and gives up once a dequeued configuration sits at depth
// 2*rows*cols. Boards of up to 64 cells are keyed by a bit-packed uint64, larger
// ones by a packed byte string.
//
// Cost grows with 2^(rows*cols) in the worst case, so callers run the oracle off
// the interactive path, for example when certifying a level list.
package solver
