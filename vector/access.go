package vector

import "fmt"

// Len reports the count of live elements.
// Complexity: O(1)
func (v *Vector[T]) Len() int { return v.size }

// Cap reports the slot count of the owned block.
// Complexity: O(1)
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// Empty reports whether the vector holds no live elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Get returns element i without bounds checking against Len(): the caller
// guarantees 0 ≤ i < Len(). Violations are unspecified — an index inside
// spare capacity reads a dead slot, one beyond it panics.
func (v *Vector[T]) Get(i int) T { return v.buf.Get(i) }

// Set overwrites element i without bounds checking against Len(); the
// caller guarantees 0 ≤ i < Len(), as with Get.
func (v *Vector[T]) Set(i int, val T) { v.buf.Set(i, val) }

// At returns element i, failing with ErrIndexOutOfRange when i is outside
// [0, Len()) — for every vector state, including empty.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, v.size)
	}

	return v.buf.Get(i), nil
}

// SetAt overwrites element i, failing with ErrIndexOutOfRange when i is
// outside [0, Len()).
func (v *Vector[T]) SetAt(i int, val T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, v.size)
	}
	v.buf.Set(i, val)

	return nil
}

// Front returns the first element. Calling Front on an empty vector is a
// caller error with unspecified outcome, as with Get.
func (v *Vector[T]) Front() T { return v.buf.Get(0) }

// Back returns the last element. Calling Back on an empty vector is a
// caller error with unspecified outcome, as with Get.
func (v *Vector[T]) Back() T { return v.buf.Get(v.size - 1) }

// Ptr returns the address of element i for in-place mutation; unchecked,
// like Get. The pointer follows the invalidation contract in the package
// doc.
func (v *Vector[T]) Ptr(i int) *T { return v.buf.Ptr(i) }

// Data exposes the live range [0, Len()) as a slice aliasing the owned
// block — nil when capacity is 0. Writes through it mutate the vector;
// the slice follows the invalidation contract in the package doc.
func (v *Vector[T]) Data() []T { return v.buf.Slice(v.size) }
