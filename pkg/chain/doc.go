// Package chain provides Chain, an ordered sequence of int32 values stored
// as a singly-linked run of cells.
//
// Cells are addressed by position. Index 0 is always the head; the length is
// never cached and is recomputed by walking the links.
//
// Key operations:
// - New: an empty chain (the zero value works too)
// - Insert/Append/InsertAt: add a value at the tail or splice it in at a position
// - Delete: unlink the cell at a position
// - Get: read the value at a position, reporting absence instead of failing
// - Len: count the reachable cells
//
// Insert and Delete treat a bad position as a programming error: they panic
// with a *BoundsError before touching any link, so the chain is left exactly
// as it was. Get never panics.
//
// A Chain is not safe for concurrent use; guard it with a mutex if it is
// shared between goroutines.
package chain
