package vector

import (
	"fmt"

	"github.com/katalvlaran/dynarr/slots"
)

// reallocate is the shared transfer protocol behind every capacity change.
//
// It acquires a block of exactly newCap slots, runs tail (if any) to build
// new trailing elements into that block, then relocates the live prefix
// and destroys the old block. Fallible work happens strictly before the
// relocation, so on any failure — allocation or tail construction — the
// fresh block is destroyed and released and the vector is untouched.
//
// tail builds only into slots ≥ v.size; on error, reallocate destroys the
// whole tail range before releasing, which covers any partial tail.
func (v *Vector[T]) reallocate(newCap int, tail func(dst slots.Buffer[T]) error) error {
	dst, err := slots.Alloc[T](newCap, v.opts.limit)
	if err != nil {
		return fmt.Errorf("vector: reallocate: %w", err)
	}
	if tail != nil {
		if err = tail(dst); err != nil {
			dst.DestroyRange(v.size, newCap)
			dst.Release()

			return err
		}
	}
	v.buf.MoveRange(dst, v.size)
	v.buf.Release()
	v.buf = dst

	return nil
}

// Reserve grows capacity to exactly n slots, relocating the live elements
// into the new block; a no-op when n ≤ Cap(). On failure the vector is
// untouched.
//
// Complexity: O(Len()) on growth, O(1) otherwise
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.Cap() {
		return nil
	}

	return v.reallocate(n, nil)
}

// ShrinkToFit reduces capacity to exactly Len(): an empty vector releases
// its block entirely (capacity 0), a partially full one relocates into an
// exact-fit block, a full one is a no-op. Element values and order are
// preserved.
//
// Complexity: O(Len())
func (v *Vector[T]) ShrinkToFit() error {
	switch {
	case v.size == 0:
		v.buf.Release()
	case v.size < v.buf.Cap():
		return v.reallocate(v.size, nil)
	}

	return nil
}

// Resize sets the live element count to n. Growth beyond capacity
// reallocates to exactly n slots (no doubling) and default-constructs the
// tail; shrinking destroys [n, Len()) in place; n within capacity
// constructs the missing tail in place — zero elements when n == Len(),
// which falls through the same branch as a harmless no-op.
//
// Complexity: O(n) worst case
func (v *Vector[T]) Resize(n int) error {
	return v.resizeWith(n, v.opts.defaultValue)
}

// ResizeFill is Resize with fill-construction: every newly created element
// is a copy of value (through the clone hook when installed).
func (v *Vector[T]) ResizeFill(n int, value T) error {
	return v.resizeWith(n, func() (T, error) { return v.opts.cloneValue(value) })
}

// resizeWith implements Resize/ResizeFill with build as the element
// factory for new trailing slots.
func (v *Vector[T]) resizeWith(n int, build func() (T, error)) error {
	if n < 0 {
		panic("vector: negative size")
	}
	switch {
	case n > v.buf.Cap():
		err := v.reallocate(n, func(dst slots.Buffer[T]) error {
			var val T
			var err error
			for i := v.size; i < n; i++ {
				if val, err = build(); err != nil {
					return err
				}
				dst.Set(i, val)
			}

			return nil
		})
		if err != nil {
			return err
		}
	case n < v.size:
		v.buf.DestroyRange(n, v.size)
	default:
		// n ≥ Len() within capacity: construct the additional elements in
		// place. A failed factory destroys the partial tail and leaves the
		// size unchanged; nothing else was touched.
		var val T
		var err error
		for i := v.size; i < n; i++ {
			if val, err = build(); err != nil {
				v.buf.DestroyRange(v.size, i)

				return err
			}
			v.buf.Set(i, val)
		}
	}
	v.size = n

	return nil
}

// Clear destroys every live element and sets the size to 0. Capacity is
// unchanged. Never fails.
//
// Complexity: O(Len())
func (v *Vector[T]) Clear() {
	v.buf.DestroyRange(0, v.size)
	v.size = 0
}
