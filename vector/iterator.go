package vector

import "iter"

// All yields (index, value) over the live range [0, Len()) front to back.
// Read-only: values are copies. The view follows the invalidation contract
// in the package doc — do not reallocate or shrink the vector mid-range.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Get(i)) {
				return
			}
		}
	}
}

// Backward yields (index, value) over the live range back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.Get(i)) {
				return
			}
		}
	}
}

// Refs yields (index, pointer) front to back for in-place mutation.
// Pointers obey the same invalidation contract as Ptr.
func (v *Vector[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Ptr(i)) {
				return
			}
		}
	}
}

// BackwardRefs yields (index, pointer) back to front for in-place
// mutation.
func (v *Vector[T]) BackwardRefs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.Ptr(i)) {
				return
			}
		}
	}
}

// Values yields just the element values front to back; the Collect
// counterpart.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.Get(i)) {
				return
			}
		}
	}
}
