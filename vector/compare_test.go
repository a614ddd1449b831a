package vector_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/dynarr/vector"
	"github.com/stretchr/testify/assert"
)

// TestEqual_SizeThenElements verifies equality semantics.
func TestEqual_SizeThenElements(t *testing.T) {
	assert.True(t, vector.Equal(vector.Of(1, 2, 3), vector.Of(1, 2, 3)))
	assert.False(t, vector.Equal(vector.Of(1, 2, 3), vector.Of(1, 2, 4)), "last element differs")
	assert.False(t, vector.Equal(vector.Of(1, 2), vector.Of(1, 2, 3)), "sizes differ")
	assert.True(t, vector.Equal(vector.New[int](), vector.New[int]()), "two empties are equal")
}

// TestEqual_CapacityIrrelevant verifies equality ignores spare capacity.
func TestEqual_CapacityIrrelevant(t *testing.T) {
	a := vector.Of(1, 2)
	b := vector.Of(1, 2)
	assert.NoError(t, b.Reserve(32))
	assert.True(t, vector.Equal(a, b), "capacity must not affect equality")
}

// TestCompare_Lexicographic verifies the ordering triples from the
// container contract.
func TestCompare_Lexicographic(t *testing.T) {
	assert.True(t, vector.Less(vector.Of(1, 2, 3), vector.Of(1, 2, 4)), "{1,2,3} < {1,2,4}")
	assert.True(t, vector.Less(vector.Of(1, 2), vector.Of(1, 2, 3)), "prefix is less")
	assert.Equal(t, 0, vector.Compare(vector.Of(1, 2, 3), vector.Of(1, 2, 3)), "equal vectors compare 0")

	assert.Equal(t, -1, vector.Compare(vector.Of(1, 9), vector.Of(2)), "first element dominates length")
	assert.Equal(t, +1, vector.Compare(vector.Of(2), vector.Of(1, 9)))
	assert.Equal(t, -1, vector.Compare(vector.New[int](), vector.Of(0)), "empty is less than anything non-empty")
}

// TestDerivedOperators verifies Greater/LessOrEqual/GreaterOrEqual follow
// from Less by symmetry and negation.
func TestDerivedOperators(t *testing.T) {
	lo := vector.Of(1, 2)
	hi := vector.Of(1, 3)
	eq := vector.Of(1, 2)

	assert.True(t, vector.Greater(hi, lo))
	assert.False(t, vector.Greater(lo, hi))
	assert.False(t, vector.Greater(lo, eq))

	assert.True(t, vector.LessOrEqual(lo, hi))
	assert.True(t, vector.LessOrEqual(lo, eq))
	assert.False(t, vector.LessOrEqual(hi, lo))

	assert.True(t, vector.GreaterOrEqual(hi, lo))
	assert.True(t, vector.GreaterOrEqual(lo, eq))
	assert.False(t, vector.GreaterOrEqual(lo, hi))
}

// TestEqualFunc_CustomEquality verifies the lazy-capability variant for
// non-comparable semantics.
func TestEqualFunc_CustomEquality(t *testing.T) {
	a := vector.Of("Go", "VECTOR")
	b := vector.Of("go", "vector")

	assert.True(t, vector.EqualFunc(a, b, strings.EqualFold), "case-insensitive equality")
	assert.False(t, vector.EqualFunc(a, b, func(x, y string) bool { return x == y }))
}

// TestCompareFunc_CustomOrder verifies custom ordering with the same
// prefix rule.
func TestCompareFunc_CustomOrder(t *testing.T) {
	byLen := func(x, y string) int { return len(x) - len(y) }

	a := vector.Of("aa", "b")
	b := vector.Of("zz", "b", "c")
	assert.Equal(t, -1, vector.CompareFunc(a, b, byLen), "equal prefix by length, shorter is less")
	assert.Equal(t, 0, vector.CompareFunc(a, a, byLen))
}
