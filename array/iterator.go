package array

// PtrIterator is a non-owning, read-only forward cursor over an Array
// whose elements are pointers, yielding the pointees rather than the
// pointers themselves.
//
// The iterator borrows the Array: it does not extend the Array's lifetime,
// and the bounds it walks are the Array's bounds at each access. Mutating
// the Array during iteration, or using the iterator after the Array is
// gone, is caller misuse and is not checked at runtime. Every dereference
// goes through the Array's own index validation, so walking past the end
// reports ErrOutOfRange instead of misbehaving.
//
// The sequence is single-pass, forward-only and non-restartable: there is
// no rewind, only Next until AtEnd.
type PtrIterator[T any] struct {
	arr   *Array[*T] // borrowed source, never owned
	index int        // current logical cursor position
}

// NewPtrIterator constructs an iterator over a with the cursor at
// a.First(). A nil a returns ErrNilArray.
// Complexity: O(1).
func NewPtrIterator[T any](a *Array[*T]) (*PtrIterator[T], error) {
	if a == nil {
		return nil, ErrNilArray
	}

	return &PtrIterator[T]{arr: a, index: a.First()}, nil
}

// Next advances the cursor to the following position. Advancing past the
// end is harmless; AtEnd turns true and further access reports
// ErrOutOfRange.
// Complexity: O(1).
func (it *PtrIterator[T]) Next() { it.index++ }

// AtEnd reports whether the cursor has moved past Last().
// Complexity: O(1).
func (it *PtrIterator[T]) AtEnd() bool { return it.index > it.arr.Last() }

// Value returns the element pointer at the cursor, validated by the
// Array itself: past-the-end access yields ErrOutOfRange.
// Complexity: O(1).
func (it *PtrIterator[T]) Value() (*T, error) {
	return it.arr.At(it.index)
}

// Deref returns the pointee at the cursor. Past-the-end access yields
// ErrOutOfRange; a nil stored pointer yields ErrNilElement rather than a
// panic.
// Complexity: O(1).
func (it *PtrIterator[T]) Deref() (T, error) {
	var zero T
	p, err := it.arr.At(it.index)
	if err != nil {
		return zero, err
	}
	if p == nil {
		return zero, ErrNilElement
	}

	return *p, nil
}
