package vector

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/dynarr/slots"
)

// New creates an empty Vector: size 0, capacity 0, no allocation.
// Complexity: O(1)
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	// Apply options
	for _, opt := range opts {
		opt(&v.opts)
	}

	return v
}

// NewSized creates a Vector of n default-constructed elements with
// capacity exactly n.
//
// If the default hook fails on element i, elements [0, i) are destroyed in
// reverse order, the block is released, and the error propagates: no
// partially built Vector ever escapes.
//
// Complexity: O(n)
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.construct(n, func(int) (T, error) { return v.opts.defaultValue() }); err != nil {
		return nil, err
	}

	return v, nil
}

// NewFilled creates a Vector of n copies of value with capacity exactly n.
// Copies go through the clone hook when one is installed; the rollback
// rule of NewSized applies.
//
// Complexity: O(n)
func NewFilled[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.construct(n, func(int) (T, error) { return v.opts.cloneValue(value) }); err != nil {
		return nil, err
	}

	return v, nil
}

// NewFromSlice creates a Vector holding a copy of every element of src, in
// order, with capacity exactly len(src). Copies go through the clone hook;
// the rollback rule of NewSized applies. src itself is never retained.
//
// Complexity: O(len(src))
func NewFromSlice[T any](src []T, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.construct(len(src), func(i int) (T, error) { return v.opts.cloneValue(src[i]) }); err != nil {
		return nil, err
	}

	return v, nil
}

// Of creates a Vector from a literal list of values. The values are
// adopted as given (no hooks are involved), so Of cannot fail.
//
// Complexity: O(len(values))
func Of[T any](values ...T) *Vector[T] {
	v := New[T]()
	// Adoption by assignment is infallible with no limit and no hooks.
	_ = v.construct(len(values), func(i int) (T, error) { return values[i], nil })

	return v
}

// Collect creates a Vector from a single-pass sequence. The sequence is
// drained once; produced values are adopted without cloning, then the
// block is sized to exactly the element count.
//
// Complexity: O(k) for k yielded values
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	var gathered []T
	for x := range seq {
		gathered = append(gathered, x)
	}

	v := New[T](opts...)
	if err := v.construct(len(gathered), func(i int) (T, error) { return gathered[i], nil }); err != nil {
		return nil, err
	}

	return v, nil
}

// construct allocates exactly n slots and builds element i with build(i).
// On failure: destroy [0, i) back-to-front, release the block, propagate.
// The receiver is only mutated after every element exists.
func (v *Vector[T]) construct(n int, build func(int) (T, error)) error {
	if n < 0 {
		panic("vector: negative size")
	}
	buf, err := slots.Alloc[T](n, v.opts.limit)
	if err != nil {
		return fmt.Errorf("vector: construct: %w", err)
	}
	var val T
	for i := 0; i < n; i++ {
		if val, err = build(i); err != nil {
			buf.DestroyRange(0, i)
			buf.Release()

			return err
		}
		buf.Set(i, val)
	}
	v.buf, v.size = buf, n

	return nil
}

// Clone returns a deep copy of the Vector: same options, same element
// order, capacity equal to the source's capacity (not just its size).
// Copies go through the clone hook; on failure nothing escapes.
//
// Complexity: O(Cap()) allocation + O(Len()) copies
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{opts: v.opts}
	buf, err := slots.Alloc[T](v.buf.Cap(), v.opts.limit)
	if err != nil {
		return nil, fmt.Errorf("vector: clone: %w", err)
	}
	var val T
	for i := 0; i < v.size; i++ {
		if val, err = v.opts.cloneValue(v.buf.Get(i)); err != nil {
			buf.DestroyRange(0, i)
			buf.Release()

			return nil, err
		}
		buf.Set(i, val)
	}
	c.buf, c.size = buf, v.size

	return c, nil
}

// CopyFrom replaces v's contents with a copy of other, with strong failure
// atomicity: the copy is built aside first and swapped in only on success,
// so a failed CopyFrom leaves v untouched. Self-assignment is a no-op.
// After a successful CopyFrom, v carries other's options (its elements
// were produced by other's hooks).
//
// Complexity: O(other.Cap() + Len())
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if other == nil {
		return ErrNilVector
	}
	if v == other {
		return nil
	}
	tmp, err := other.Clone()
	if err != nil {
		return err
	}
	v.Swap(tmp)
	// tmp now holds v's previous elements; destroy them and drop the block.
	tmp.Clear()
	tmp.buf.Release()

	return nil
}

// MoveFrom steals other's storage in O(1): v's current elements are
// destroyed and its block released, then other's block, size and options
// transfer over and other resets to the empty state (size 0, capacity 0).
// Never fails. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Clear()
	v.buf.Release()
	v.size, v.buf, v.opts = other.size, other.buf, other.opts
	other.size = 0
	other.buf = slots.Buffer[T]{}
}

// Swap exchanges the full state of two vectors (storage, size, options) in
// O(1). Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.size, other.size = other.size, v.size
	v.buf, other.buf = other.buf, v.buf
	v.opts, other.opts = other.opts, v.opts
}

// ToSlice returns a fresh slice holding the live elements by assignment
// (no clone hook). Mutating the result never touches the vector's block,
// though pointer-typed elements still share their referents.
//
// Complexity: O(Len())
func (v *Vector[T]) ToSlice() []T {
	if v.size == 0 {
		return nil
	}
	out := make([]T, v.size)
	copy(out, v.buf.Slice(v.size))

	return out
}

// String renders the live elements for debugging, e.g. "[1 2 3]".
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.buf.Slice(v.size))
}
