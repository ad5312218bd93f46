// Package rectarray: sentinel error set.
// Operations return these sentinels and tests check them via errors.Is;
// nothing in the package panics on caller-triggered conditions.
package rectarray

import "errors"

// Sentinel errors for rectarray operations, prefixed "rectarray: ...".
var (
	// ErrBadBounds indicates an invalid requested axis range (hi < lo-1)
	// or a negative row/column count at construction.
	ErrBadBounds = errors.New("rectarray: invalid bounds")

	// ErrOutOfRange indicates a row or column index outside the current
	// valid ranges. Indexers return this and leave the RectArray unchanged.
	ErrOutOfRange = errors.New("rectarray: index out of range")

	// ErrShapeMismatch indicates that an array passed to SetRow or SetCol
	// does not span the required bounds ([MinCol, MaxCol] for rows,
	// [MinRow, MaxRow] for columns).
	ErrShapeMismatch = errors.New("rectarray: shape mismatch")

	// ErrNilArray indicates a nil *RectArray or nil *array.Array argument.
	ErrNilArray = errors.New("rectarray: nil array")
)
