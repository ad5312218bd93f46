// Package lvlarr is a small family of bounds-checked, arbitrarily-indexed
// in-memory containers — sequences and rectangles whose valid index range
// does not have to start at zero.
//
// 🚀 What is lvlarr?
//
//	A compact, value-semantics library for numerical code that thinks in
//	1-based (or any-based) coordinates:
//		• array/     — Array[T], a contiguous sequence addressed by an
//		  inclusive caller-chosen range [First, Last], with validated
//		  access, search, and positional insert/remove
//		• array/     — PtrIterator[T], a read-only forward cursor over an
//		  Array of pointers, yielding pointees
//		• rectarray/ — RectArray[T], the two-dimensional analogue with
//		  independent row and column ranges, row/column extraction,
//		  swapping and rotation
//
// ✨ Why choose lvlarr?
//
//   - Honest bounds – every read, write and removal is validated; errors
//     are sentinels checked with errors.Is, never panics
//   - Full value semantics – exclusive ownership, deep copies, deep
//     equality sensitive to both bounds and contents
//   - Reference stability – same-shape assignment overwrites storage in
//     place, so references into a container survive re-assignment
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	index:  1    2    3    4
//	      [ 10 | 15 | 20 | 30 ]   ← Insert(15, 2) into [10,20,30] over [1,3]
//
// Dive into the per-package docs for contracts, complexity notes and
// examples.
//
//	go get github.com/katalvlaran/lvlarr
package lvlarr
