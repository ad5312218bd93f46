package rectarray

import (
	"fmt"

	"github.com/katalvlaran/lvlarr/array"
)

// RectArray is a single-owner rectangular array addressed by two
// independent inclusive ranges: rows [minRow, maxRow], columns
// [minCol, maxCol]. Either axis may be empty (max == min-1), in which
// case no storage is held.
//
// Elements live in a flat row-major buffer; (r, c) maps to the physical
// slot (r-minRow)*cols + (c-minCol).
type RectArray[T comparable] struct {
	minRow, maxRow int // inclusive row range; maxRow == minRow-1 when empty
	minCol, maxCol int // inclusive column range; maxCol == minCol-1 when empty
	data           []T // flat row-major storage; nil when either axis is empty
}

// New constructs a RectArray with rows indexed [1, rows] and columns
// indexed [1, cols], all elements zero-valued. Negative counts return
// ErrBadBounds; a zero count empties that axis.
// Complexity: O(rows*cols).
func New[T comparable](rows, cols int) (*RectArray[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadBounds
	}

	return NewRange[T](1, rows, 1, cols)
}

// NewRange constructs a RectArray over rows [minRow, maxRow] and columns
// [minCol, maxCol]. Each axis is validated independently: max < min-1
// returns ErrBadBounds. Elements are zero-valued.
// Complexity: O(NumRows*NumCols).
func NewRange[T comparable](minRow, maxRow, minCol, maxCol int) (*RectArray[T], error) {
	if maxRow+1 < minRow || maxCol+1 < minCol {
		return nil, ErrBadBounds
	}
	g := &RectArray[T]{minRow: minRow, maxRow: maxRow, minCol: minCol, maxCol: maxCol}
	if n := g.NumRows() * g.NumCols(); n > 0 {
		g.data = make([]T, n)
	}

	return g, nil
}

// NumRows returns the number of rows, maxRow-minRow+1.
func (g *RectArray[T]) NumRows() int { return g.maxRow - g.minRow + 1 }

// NumCols returns the number of columns, maxCol-minCol+1.
func (g *RectArray[T]) NumCols() int { return g.maxCol - g.minCol + 1 }

// MinRow returns the lowest valid row index.
func (g *RectArray[T]) MinRow() int { return g.minRow }

// MaxRow returns the highest valid row index.
func (g *RectArray[T]) MaxRow() int { return g.maxRow }

// MinCol returns the lowest valid column index.
func (g *RectArray[T]) MinCol() int { return g.minCol }

// MaxCol returns the highest valid column index.
func (g *RectArray[T]) MaxCol() int { return g.maxCol }

// CheckRow reports whether r lies inside [MinRow, MaxRow].
func (g *RectArray[T]) CheckRow(r int) bool { return r >= g.minRow && r <= g.maxRow }

// CheckCol reports whether c lies inside [MinCol, MaxCol].
func (g *RectArray[T]) CheckCol(c int) bool { return c >= g.minCol && c <= g.maxCol }

// Check reports whether (r, c) is a valid element coordinate.
func (g *RectArray[T]) Check(r, c int) bool { return g.CheckRow(r) && g.CheckCol(c) }

// indexOf computes the flat index for (r, c) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *RectArray[T]) indexOf(r, c int) (int, error) {
	if !g.Check(r, c) {
		return 0, ErrOutOfRange
	}

	return (r-g.minRow)*g.NumCols() + (c - g.minCol), nil
}

// rowSlice returns the backing sub-slice for row r, which is assumed
// valid. Rows are contiguous in the flat buffer.
func (g *RectArray[T]) rowSlice(r int) []T {
	cols := g.NumCols()
	off := (r - g.minRow) * cols

	return g.data[off : off+cols]
}

// At retrieves the element at (r, c), or ErrOutOfRange.
// Complexity: O(1).
func (g *RectArray[T]) At(r, c int) (T, error) {
	idx, err := g.indexOf(r, c)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Set assigns v at (r, c), or returns ErrOutOfRange leaving the
// RectArray unchanged.
// Complexity: O(1).
func (g *RectArray[T]) Set(r, c int, v T) error {
	idx, err := g.indexOf(r, c)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row extracts row r as a fresh *array.Array bounded [MinCol, MaxCol].
// The returned array owns its storage; mutating it does not touch g.
// Complexity: O(NumCols).
func (g *RectArray[T]) Row(r int) (*array.Array[T], error) {
	if !g.CheckRow(r) {
		return nil, ErrOutOfRange
	}

	return array.FromSlice(g.minCol, g.rowSlice(r)), nil
}

// SetRow overwrites row r with the contents of row, which must span
// exactly [MinCol, MaxCol] (ErrShapeMismatch otherwise).
// Complexity: O(NumCols).
func (g *RectArray[T]) SetRow(r int, row *array.Array[T]) error {
	if row == nil {
		return ErrNilArray
	}
	if !g.CheckRow(r) {
		return ErrOutOfRange
	}
	if row.First() != g.minCol || row.Last() != g.maxCol {
		return ErrShapeMismatch
	}
	copy(g.rowSlice(r), row.Values())

	return nil
}

// Col extracts column c as a fresh *array.Array bounded [MinRow, MaxRow].
// Complexity: O(NumRows).
func (g *RectArray[T]) Col(c int) (*array.Array[T], error) {
	if !g.CheckCol(c) {
		return nil, ErrOutOfRange
	}
	elems := make([]T, 0, g.NumRows())
	for r := g.minRow; r <= g.maxRow; r++ {
		elems = append(elems, g.rowSlice(r)[c-g.minCol])
	}

	return array.FromSlice(g.minRow, elems), nil
}

// SetCol overwrites column c with the contents of col, which must span
// exactly [MinRow, MaxRow] (ErrShapeMismatch otherwise).
// Complexity: O(NumRows).
func (g *RectArray[T]) SetCol(c int, col *array.Array[T]) error {
	if col == nil {
		return ErrNilArray
	}
	if !g.CheckCol(c) {
		return ErrOutOfRange
	}
	if col.First() != g.minRow || col.Last() != g.maxRow {
		return ErrShapeMismatch
	}
	for i, v := range col.Values() {
		g.rowSlice(g.minRow + i)[c-g.minCol] = v
	}

	return nil
}

// SwapRows exchanges rows r1 and r2 in place.
// Complexity: O(NumCols).
func (g *RectArray[T]) SwapRows(r1, r2 int) error {
	if !g.CheckRow(r1) || !g.CheckRow(r2) {
		return ErrOutOfRange
	}
	if r1 == r2 {
		return nil
	}
	a, b := g.rowSlice(r1), g.rowSlice(r2)
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}

	return nil
}

// SwapCols exchanges columns c1 and c2 in place.
// Complexity: O(NumRows).
func (g *RectArray[T]) SwapCols(c1, c2 int) error {
	if !g.CheckCol(c1) || !g.CheckCol(c2) {
		return ErrOutOfRange
	}
	if c1 == c2 {
		return nil
	}
	i, j := c1-g.minCol, c2-g.minCol
	for r := g.minRow; r <= g.maxRow; r++ {
		row := g.rowSlice(r)
		row[i], row[j] = row[j], row[i]
	}

	return nil
}

// RotateUp cyclically rotates the row band [lo, hi] up by one position:
// row lo moves to hi, and every row in (lo, hi] shifts up. Both bounds
// must be valid rows with lo <= hi, or ErrOutOfRange is returned.
// Complexity: O((hi-lo+1)*NumCols).
func (g *RectArray[T]) RotateUp(lo, hi int) error {
	if !g.CheckRow(lo) || !g.CheckRow(hi) || lo > hi {
		return ErrOutOfRange
	}
	if lo == hi {
		return nil
	}
	cols := g.NumCols()
	saved := make([]T, cols)
	copy(saved, g.rowSlice(lo))
	lower, upper := (lo-g.minRow)*cols, (hi-g.minRow+1)*cols
	copy(g.data[lower:upper-cols], g.data[lower+cols:upper])
	copy(g.rowSlice(hi), saved)

	return nil
}

// RotateDown cyclically rotates the row band [lo, hi] down by one
// position: row hi moves to lo, and every row in [lo, hi) shifts down.
// Complexity: O((hi-lo+1)*NumCols).
func (g *RectArray[T]) RotateDown(lo, hi int) error {
	if !g.CheckRow(lo) || !g.CheckRow(hi) || lo > hi {
		return ErrOutOfRange
	}
	if lo == hi {
		return nil
	}
	cols := g.NumCols()
	saved := make([]T, cols)
	copy(saved, g.rowSlice(hi))
	lower, upper := (lo-g.minRow)*cols, (hi-g.minRow+1)*cols
	copy(g.data[lower+cols:upper], g.data[lower:upper-cols])
	copy(g.rowSlice(lo), saved)

	return nil
}

// Clone returns a deep copy: same axis ranges, freshly owned storage.
// Complexity: O(NumRows*NumCols).
func (g *RectArray[T]) Clone() *RectArray[T] {
	c := &RectArray[T]{minRow: g.minRow, maxRow: g.maxRow, minCol: g.minCol, maxCol: g.maxCol}
	if len(g.data) > 0 {
		c.data = make([]T, len(g.data))
		copy(c.data, g.data)
	}

	return c
}

// Assign deep-copies other into g. As with array.Assign, a receiver whose
// shape already equals other's reuses its storage and is overwritten in
// place; otherwise the old storage is released and fresh exact-size
// storage is allocated under the adopted ranges. A nil other returns
// ErrNilArray; self-assignment is a no-op.
// Complexity: O(other.NumRows()*other.NumCols()).
func (g *RectArray[T]) Assign(other *RectArray[T]) error {
	if other == nil {
		return ErrNilArray
	}
	if g == other {
		return nil
	}
	if g.minRow != other.minRow || g.maxRow != other.maxRow ||
		g.minCol != other.minCol || g.maxCol != other.maxCol {
		g.minRow, g.maxRow = other.minRow, other.maxRow
		g.minCol, g.maxCol = other.minCol, other.maxCol
		if len(other.data) > 0 {
			g.data = make([]T, len(other.data))
		} else {
			g.data = nil
		}
	}
	copy(g.data, other.data)

	return nil
}

// Equal reports whether g and other have identical row and column ranges
// and equal elements everywhere. Equal(nil) is false.
// Complexity: O(NumRows*NumCols).
func (g *RectArray[T]) Equal(other *RectArray[T]) bool {
	if other == nil {
		return false
	}
	if g == other {
		return true
	}
	if g.minRow != other.minRow || g.maxRow != other.maxRow ||
		g.minCol != other.minCol || g.maxCol != other.maxCol {
		return false
	}
	for i, v := range g.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (g *RectArray[T]) NotEqual(other *RectArray[T]) bool { return !g.Equal(other) }

// String implements fmt.Stringer for easy debugging, one row per line.
// Complexity: O(NumRows*NumCols) for string construction.
func (g *RectArray[T]) String() string {
	var s string
	cols := g.NumCols()
	for r := g.minRow; r <= g.maxRow && cols > 0; r++ {
		s += "["
		row := g.rowSlice(r)
		for i, v := range row {
			s += fmt.Sprintf("%v", v)
			if i < cols-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
