// File: compare.go
// Role: Equality and lexicographic ordering over vectors.
//
// The element capability is lazy: T must be comparable / ordered only at
// the call sites of these functions, never to hold a Vector[T] at all.
// The derived operators (Greater, LessOrEqual, GreaterOrEqual) follow from
// Less by symmetry and negation.

package vector

import "golang.org/x/exp/constraints"

// Equal reports whether a and b hold the same elements in the same order.
// Size is compared first, then elements left to right.
//
// Complexity: O(min Len)
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf.Get(i) != b.buf.Get(i) {
			return false
		}
	}

	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf.Get(i), b.buf.Get(i)) {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically: the first unequal element pair
// decides; if one vector is a prefix of the other, the shorter is less.
// Returns -1, 0, or +1.
//
// Complexity: O(min Len)
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case y < x:
			return +1
		}

		return 0
	})
}

// CompareFunc is Compare with a caller-supplied element ordering; cmp must
// return a negative, zero, or positive value.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	n := a.size
	if b.size < n {
		n = b.size
	}
	for i := 0; i < n; i++ {
		if c := cmp(a.buf.Get(i), b.buf.Get(i)); c != 0 {
			return c
		}
	}
	switch {
	case a.size < b.size:
		return -1
	case b.size < a.size:
		return +1
	}

	return 0
}

// Less reports a < b in lexicographic order.
func Less[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// Greater reports a > b, i.e. Less(b, a).
func Greater[T constraints.Ordered](a, b *Vector[T]) bool { return Less(b, a) }

// LessOrEqual reports a ≤ b, i.e. !Less(b, a).
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool { return !Less(b, a) }

// GreaterOrEqual reports a ≥ b, i.e. !Less(a, b).
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool { return !Less(a, b) }
