package slots

import (
	"errors"
	"fmt"
)

// ErrSlotLimit indicates an allocation request exceeded the caller's limit.
var ErrSlotLimit = errors.New("slots: capacity limit exceeded")

// Buffer is a contiguous block of element slots. The zero Buffer is the
// null buffer: capacity 0, no block. Buffer is a small value; copying one
// aliases the same block, so exactly one copy should be treated as the
// owner.
type Buffer[T any] struct {
	data []T // len(data) == capacity; dead slots hold the zero value
}

// Alloc acquires a block of n dead slots.
//
// A limit of 0 (or negative) means unlimited. When limit > 0 and n > limit,
// Alloc fails with ErrSlotLimit and no block is acquired. n == 0 yields the
// null buffer and never fails.
//
// Complexity: O(n).
func Alloc[T any](n, limit int) (Buffer[T], error) {
	if n <= 0 {
		return Buffer[T]{}, nil
	}
	if limit > 0 && n > limit {
		return Buffer[T]{}, fmt.Errorf("%w: want %d slots, limit %d", ErrSlotLimit, n, limit)
	}

	return Buffer[T]{data: make([]T, n)}, nil
}

// Cap reports the slot count of the block (0 for the null buffer).
func (b Buffer[T]) Cap() int { return len(b.data) }

// Nil reports whether b is the null buffer.
func (b Buffer[T]) Nil() bool { return b.data == nil }

// Release drops the block. After Release, b is the null buffer. Live slots
// are the caller's responsibility: destroy them first if element death must
// be observable before the block goes away. Safe on the null buffer.
func (b *Buffer[T]) Release() { b.data = nil }

// Set constructs v into slot i, making it live. Any previous value in the
// slot is overwritten without destruction.
func (b Buffer[T]) Set(i int, v T) { b.data[i] = v }

// Get returns the value held in slot i.
func (b Buffer[T]) Get(i int) T { return b.data[i] }

// Ptr returns the address of slot i. The pointer is valid only as long as
// the block itself.
func (b Buffer[T]) Ptr(i int) *T { return &b.data[i] }

// Slice exposes the first n slots as a Go slice aliasing the block.
// Returns nil for the null buffer.
func (b Buffer[T]) Slice(n int) []T {
	if b.data == nil {
		return nil
	}

	return b.data[:n]
}

// Destroy returns slot i to the dead state by zeroing it, releasing any
// references the old value held.
func (b Buffer[T]) Destroy(i int) {
	var zero T
	b.data[i] = zero
}

// DestroyRange destroys slots [lo, hi) back-to-front, mirroring
// reverse-order destruction of a partially built range.
func (b Buffer[T]) DestroyRange(lo, hi int) {
	var zero T
	for i := hi - 1; i >= lo; i-- {
		b.data[i] = zero
	}
}

// MoveRange relocates the first n slots of b into the first n slots of dst:
// each value is copied across and its source slot destroyed. Relocation
// cannot fail; callers building rollback protocols construct any fallible
// extras into dst first and relocate only once nothing can fail.
func (b Buffer[T]) MoveRange(dst Buffer[T], n int) {
	var zero T
	for i := 0; i < n; i++ {
		dst.data[i] = b.data[i]
		b.data[i] = zero
	}
}
