// Package array provides Array[T] — a bounds-checked, contiguous sequence
// container whose valid index range is an inclusive, caller-chosen integer
// interval [First, Last] rather than the fixed [0, n).
//
// The container was designed for numerical code (vectors, matrices, game
// trees) that naturally counts from 1, or from any other base. An Array
// constructed over [lo, hi] owns exactly hi-lo+1 elements; the special
// shape Last == First-1 denotes the empty sequence, which owns no storage
// at all.
//
// Guarantees:
//
//   - Validated access — At, Set, Ref and Remove reject indices outside
//     [First, Last] with ErrOutOfRange before any state is touched, so a
//     failed operation leaves the Array exactly as it was.
//   - Full value semantics — exclusive ownership of storage, deep Clone,
//     deep Assign, and Equal sensitive to both bounds and contents.
//   - Reference stability — Assign from a same-shape source overwrites the
//     existing storage in place instead of reallocating, so pointers
//     previously obtained via Ref stay valid and observe the new values.
//     Downstream vector types depend on this contract; it is deliberate,
//     not an optimization detail.
//   - Exact-size storage — Append, Insert and Remove reallocate to the new
//     exact length on every call. There is no amortized spare capacity;
//     Len and Equal always reflect precisely the owned elements.
//
// PtrIterator[T] complements Array: a non-owning, read-only forward cursor
// over an Array of pointers that yields the pointees. It borrows the Array
// and must not outlive it.
//
// Errors:
//
//	ErrBadBounds  - requested range [lo, hi] has hi < lo-1, or a negative length.
//	ErrOutOfRange - an index fell outside the current [First, Last] range.
//	ErrNilArray   - a nil *Array was passed where a value is required.
//	ErrNilElement - an iterator dereferenced a nil element pointer.
package array
