package array

import "fmt"

// Array is a single-owner, contiguous sequence addressed by an inclusive
// integer range [first, last] chosen at construction time.
//
// Physically the elements live in a zero-based slice; logical index i maps
// to the physical slot i-first. The slice length always equals exactly
// last-first+1, and no storage is held at all when the Array is empty
// (last == first-1).
//
// T must be comparable so that Equal, Find and Contains can compare
// elements with ==.
type Array[T comparable] struct {
	first int // lowest valid index (inclusive)
	last  int // highest valid index (inclusive); first-1 when empty
	data  []T // backing storage, length == last-first+1; nil when empty
}

// New constructs an Array of the given length indexed from 1, so the valid
// range is [1, length]. A length of 0 yields the empty Array with no
// storage allocated. Negative lengths return ErrBadBounds.
// Complexity: O(length).
func New[T comparable](length int) (*Array[T], error) {
	if length < 0 {
		return nil, ErrBadBounds
	}
	a := &Array[T]{first: 1, last: length}
	if length > 0 {
		a.data = make([]T, length)
	}

	return a, nil
}

// NewRange constructs an Array over the inclusive range [lo, hi] with all
// elements zero-valued. hi == lo-1 yields the empty Array; hi < lo-1
// returns ErrBadBounds.
// Complexity: O(hi-lo+1).
func NewRange[T comparable](lo, hi int) (*Array[T], error) {
	if hi+1 < lo {
		return nil, ErrBadBounds
	}
	a := &Array[T]{first: lo, last: hi}
	if hi >= lo {
		a.data = make([]T, hi-lo+1)
	}

	return a, nil
}

// FromSlice constructs an Array indexed from lo whose elements are copied
// from elems, so the valid range is [lo, lo+len(elems)-1]. An empty slice
// yields the empty Array over [lo, lo-1]. The slice is copied, never
// aliased.
// Complexity: O(len(elems)).
func FromSlice[T comparable](lo int, elems []T) *Array[T] {
	a := &Array[T]{first: lo, last: lo + len(elems) - 1}
	if len(elems) > 0 {
		a.data = make([]T, len(elems))
		copy(a.data, elems)
	}

	return a
}

// Values returns a fresh slice holding the elements in index order, for
// consumers that enumerate First()..Last() (formatting, bulk copies).
// Mutating the returned slice does not affect the Array.
// Complexity: O(Len).
func (a *Array[T]) Values() []T {
	if len(a.data) == 0 {
		return nil
	}
	out := make([]T, len(a.data))
	copy(out, a.data)

	return out
}

// Clone returns a deep copy of the Array: same bounds, freshly owned
// storage, element-wise copied contents.
// Complexity: O(Len).
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{first: a.first, last: a.last}
	if len(a.data) > 0 {
		c.data = make([]T, len(a.data))
		copy(c.data, a.data)
	}

	return c
}

// Assign deep-copies other into a.
//
// When the receiver's shape already equals other's shape, the existing
// storage is reused and overwritten in place — pointers previously taken
// via Ref remain valid and observe the new contents. Downstream code
// holding references across same-shape assignment relies on this; the
// reuse is a documented contract, not an incidental optimization. When
// the shapes differ, the old storage is released and fresh exact-size
// storage is allocated under the adopted bounds.
//
// A nil other returns ErrNilArray and leaves a unchanged. Self-assignment
// is a no-op.
// Complexity: O(other.Len()).
func (a *Array[T]) Assign(other *Array[T]) error {
	if other == nil {
		return ErrNilArray
	}
	if a == other {
		return nil
	}
	if a.first != other.first || a.last != other.last {
		// Shape differs: adopt bounds and reallocate to the exact size.
		a.first, a.last = other.first, other.last
		if len(other.data) > 0 {
			a.data = make([]T, len(other.data))
		} else {
			a.data = nil
		}
	}
	copy(a.data, other.data)

	return nil
}

// Equal reports whether a and other have the same shape and equal elements
// at every index. Arrays with identical contents but different First are
// unequal. Equal(nil) is false.
// Complexity: O(Len).
func (a *Array[T]) Equal(other *Array[T]) bool {
	if other == nil {
		return false
	}
	if a == other {
		return true
	}
	if a.first != other.first || a.last != other.last {
		return false
	}
	for i, v := range a.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (a *Array[T]) NotEqual(other *Array[T]) bool { return !a.Equal(other) }

// Len returns the number of elements, last-first+1 (0 when empty).
// Complexity: O(1).
func (a *Array[T]) Len() int { return a.last - a.first + 1 }

// First returns the lowest valid index.
func (a *Array[T]) First() int { return a.first }

// Last returns the highest valid index (First()-1 when empty).
func (a *Array[T]) Last() int { return a.last }

// check validates a logical index against [first, last].
func (a *Array[T]) check(index int) error {
	if index < a.first || index > a.last {
		return ErrOutOfRange
	}

	return nil
}

// At returns the element at the given logical index, or ErrOutOfRange if
// index lies outside [First, Last].
// Complexity: O(1).
func (a *Array[T]) At(index int) (T, error) {
	if err := a.check(index); err != nil {
		var zero T
		return zero, err
	}

	return a.data[index-a.first], nil
}

// Set assigns v at the given logical index, or returns ErrOutOfRange
// leaving the Array unchanged.
// Complexity: O(1).
func (a *Array[T]) Set(index int, v T) error {
	if err := a.check(index); err != nil {
		return err
	}
	a.data[index-a.first] = v

	return nil
}

// Ref returns a pointer to the element at the given logical index,
// aliasing the Array's own storage. The pointer stays valid across
// same-shape Assign (see Assign) but is invalidated by Append, Insert and
// Remove, which reallocate storage.
// Complexity: O(1).
func (a *Array[T]) Ref(index int) (*T, error) {
	if err := a.check(index); err != nil {
		return nil, err
	}

	return &a.data[index-a.first], nil
}

// Find returns the lowest index in [First, Last] whose element equals v,
// or the sentinel First()-1 when no element matches. The sentinel is
// exactly First()-1 — callers must compare against it, not test
// "index < First()" — and coincides with Last() on the empty Array.
// Complexity: O(Len).
func (a *Array[T]) Find(v T) int {
	for i, e := range a.data {
		if e == v {
			return a.first + i
		}
	}

	return a.first - 1
}

// Contains reports whether v occurs in the Array.
// Complexity: O(Len).
func (a *Array[T]) Contains(v T) bool { return a.Find(v) != a.first-1 }

// insertAt places v at logical position n, assumed already resolved into
// [first, last+1]. A fresh buffer of the exact new length is allocated:
// elements [first, n-1] are copied unchanged, v lands at n, and the old
// elements [n, last] are copied shifted up to [n+1, last+1]. The old
// storage is released by replacement and last grows by one.
// Complexity: O(Len).
func (a *Array[T]) insertAt(v T, n int) int {
	at := n - a.first // physical insertion slot
	grown := make([]T, a.Len()+1)
	copy(grown, a.data[:at])
	grown[at] = v
	copy(grown[at+1:], a.data[at:])
	a.data = grown
	a.last++

	return n
}

// Append inserts v as the new highest element and returns its index,
// which is guaranteed to be Last() after the call (the previous Last()+1).
// Complexity: O(Len).
func (a *Array[T]) Append(v T) int {
	return a.insertAt(v, a.last+1)
}

// Insert places v at position n, shifting the elements at or after the
// resolved position up by one, and returns the index actually used.
//
// n is clamped rather than validated: a target below First snaps to First
// (insert at the beginning), a target above Last+1 snaps to Last+1
// (append). The clamping is documented policy, not an error path.
// Complexity: O(Len).
func (a *Array[T]) Insert(v T, n int) int {
	if n < a.first {
		n = a.first
	} else if n > a.last+1 {
		n = a.last + 1
	}

	return a.insertAt(v, n)
}

// Remove deletes the element at index n and returns it, shifting every
// subsequent element down by one and shrinking the range by one. Indices
// outside [First, Last] return ErrOutOfRange with the Array untouched.
// Removing the final element releases the storage entirely.
// Complexity: O(Len).
func (a *Array[T]) Remove(n int) (T, error) {
	var zero T
	if err := a.check(n); err != nil {
		return zero, err
	}

	at := n - a.first
	removed := a.data[at]
	if a.Len() == 1 {
		a.data = nil
	} else {
		shrunk := make([]T, a.Len()-1)
		copy(shrunk, a.data[:at])
		copy(shrunk[at:], a.data[at+1:])
		a.data = shrunk
	}
	a.last--

	return removed, nil
}

// String implements fmt.Stringer for easy debugging, rendering the
// elements in index order.
// Complexity: O(Len) for string construction.
func (a *Array[T]) String() string {
	s := "["
	for i, v := range a.data {
		s += fmt.Sprintf("%v", v)
		if i < len(a.data)-1 {
			s += ", "
		}
	}

	return s + "]"
}
