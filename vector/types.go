// Package vector declares the Vector type, its sentinel errors, and the
// element-capability options shared by all constructors.
//
// Errors:
//
//	ErrIndexOutOfRange - checked access with index ≥ Len().
//	ErrNilVector       - nil source passed to CopyFrom.
//	ErrNilConstructor  - nil factory passed to EmplaceBack.
package vector

import (
	"errors"

	"github.com/katalvlaran/dynarr/slots"
)

// Sentinel errors for vector operations.
var (
	// ErrIndexOutOfRange indicates a checked access with an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrNilVector indicates a nil source vector where a value was required.
	ErrNilVector = errors.New("vector: nil source vector")

	// ErrNilConstructor indicates a nil in-place construction factory.
	ErrNilConstructor = errors.New("vector: nil constructor")
)

// Vector is a contiguous, growable sequence of T.
//
// The first size slots of the underlying buffer are live; the remaining
// Cap()-Len() slots are dead (zero-valued) until a mutator constructs into
// them. The zero Vector is an empty vector with no hooks, equivalent to
// New[T]().
type Vector[T any] struct {
	size int             // count of live elements; 0 ≤ size ≤ buf.Cap()
	buf  slots.Buffer[T] // exclusive owner of the slot block
	opts options[T]
}

// options holds the element capability hooks for one Vector instance.
//
// limit bounds any single allocation (0 = unlimited). clone and defaultFn
// model fallible copy- and default-construction of T; when nil, plain
// assignment and the zero value are used and those paths cannot fail.
// Relocation of existing elements never uses clone.
type options[T any] struct {
	limit     int
	clone     func(T) (T, error)
	defaultFn func() (T, error)
}

// Option configures a Vector at construction time.
type Option[T any] func(*options[T])

// WithLimit bounds every allocation this vector performs to at most n
// slots. Operations needing more fail with slots.ErrSlotLimit (wrapped).
// n ≤ 0 means unlimited.
func WithLimit[T any](n int) Option[T] {
	return func(o *options[T]) { o.limit = n }
}

// WithClone installs a copy-construction hook used wherever the vector
// copies an element: filled and from-slice construction, Clone, CopyFrom,
// PushBackCopy and ResizeFill. A hook error aborts the operation under the
// atomicity rules described in the package doc.
func WithClone[T any](fn func(T) (T, error)) Option[T] {
	return func(o *options[T]) { o.clone = fn }
}

// WithDefault installs a default-construction hook used by NewSized and by
// Resize when it creates new trailing elements.
func WithDefault[T any](fn func() (T, error)) Option[T] {
	return func(o *options[T]) { o.defaultFn = fn }
}

// cloneValue copy-constructs x through the clone hook, or by assignment
// when no hook is installed.
func (o options[T]) cloneValue(x T) (T, error) {
	if o.clone == nil {
		return x, nil
	}

	return o.clone(x)
}

// defaultValue default-constructs a T through the hook, or yields the zero
// value when no hook is installed.
func (o options[T]) defaultValue() (T, error) {
	if o.defaultFn == nil {
		var zero T
		return zero, nil
	}

	return o.defaultFn()
}
