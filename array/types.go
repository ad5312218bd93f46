// Package array: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// array package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on caller-triggered conditions.
package array

import "errors"

// Sentinel errors for array operations.
// Every message is prefixed with "array: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrBadBounds indicates an invalid requested range: hi < lo-1 on
	// NewRange, or a negative length on New. Constructors validate before
	// any allocation.
	ErrBadBounds = errors.New("array: invalid bounds")

	// ErrOutOfRange indicates that an index is outside the current valid
	// [First, Last] range. Public indexers (At/Set/Ref/Remove) return
	// this, not panic, and leave the Array unchanged.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrNilArray indicates that a nil *Array was passed to an operation
	// that requires a concrete source (Assign, NewPtrIterator).
	ErrNilArray = errors.New("array: nil array")

	// ErrNilElement indicates that a PtrIterator dereferenced an element
	// whose stored pointer is nil.
	ErrNilElement = errors.New("array: nil element pointer")
)
