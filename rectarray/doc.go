// Package rectarray provides RectArray[T] — a bounds-checked rectangular
// array addressed by two independent, inclusive, caller-chosen integer
// ranges: rows in [MinRow, MaxRow] and columns in [MinCol, MaxCol].
//
// RectArray is the two-dimensional companion of the array package. It
// carries the same value-semantics guarantees (exclusive storage, deep
// Clone and Assign, deep Equal, validated access) plus row/column
// structure: whole rows and columns can be extracted as *array.Array
// values bounded by the opposite axis, written back, swapped, and row
// bands can be rotated cyclically.
//
// Storage is a single flat row-major buffer; (r, c) maps to the physical
// slot (r-MinRow)*NumCols + (c-MinCol). As with array.Array, same-shape
// Assign overwrites the existing buffer in place, preserving references.
//
// Errors:
//
//	ErrBadBounds     - an axis range [lo, hi] has hi < lo-1, or a negative count.
//	ErrOutOfRange    - a row or column index outside the valid ranges.
//	ErrShapeMismatch - SetRow/SetCol given an array with the wrong bounds.
//	ErrNilArray      - a nil argument where a concrete value is required.
package rectarray
