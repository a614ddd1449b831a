package vector

import "github.com/katalvlaran/dynarr/slots"

// PushBack appends val by adoption (move): the vector takes the value as
// given, without the clone hook. Only allocation can fail, and a failed
// growth leaves the vector untouched.
//
// Growth policy: when Len() == Cap(), capacity doubles (1 from empty);
// otherwise the element is constructed directly into the next dead slot.
//
// Complexity: amortized O(1), O(Len()) when growth fires
func (v *Vector[T]) PushBack(val T) error {
	return v.pushBack(func() (T, error) { return val, nil })
}

// PushBackCopy appends a copy of val through the clone hook. A hook
// failure on the in-place path leaves the element absent and the size
// unchanged; on the growth path the fresh block is discarded and the
// vector is untouched.
func (v *Vector[T]) PushBackCopy(val T) error {
	return v.pushBack(func() (T, error) { return v.opts.cloneValue(val) })
}

// EmplaceBack appends an element constructed in place by the caller's
// factory, with the same atomicity as PushBackCopy. A nil factory fails
// with ErrNilConstructor.
func (v *Vector[T]) EmplaceBack(construct func() (T, error)) error {
	if construct == nil {
		return ErrNilConstructor
	}

	return v.pushBack(construct)
}

// pushBack runs the append protocol with build as the element source.
// The size increments only after the element exists.
func (v *Vector[T]) pushBack(build func() (T, error)) error {
	if v.size == v.buf.Cap() {
		newCap := v.buf.Cap() * 2
		if newCap == 0 {
			newCap = 1
		}
		err := v.reallocate(newCap, func(dst slots.Buffer[T]) error {
			val, err := build()
			if err != nil {
				return err
			}
			dst.Set(v.size, val)

			return nil
		})
		if err != nil {
			return err
		}
	} else {
		val, err := build()
		if err != nil {
			return err
		}
		v.buf.Set(v.size, val)
	}
	v.size++

	return nil
}

// PopBack destroys the last element and shrinks the size by one; a no-op
// on an empty vector. Never fails. Capacity is unchanged.
//
// Complexity: O(1)
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.buf.Destroy(v.size)
}
