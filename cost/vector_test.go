package cost

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vec builds a vector from its buckets written most significant first, the
// last argument landing in bucket 0.
func vec(values ...uint8) Vector[uint8] {
	var v Vector[uint8]
	for i, u := range values {
		v.buckets[len(values)-1-i] = u
	}
	return v
}

// sample draws a vector with small, mostly sparse buckets so that sums never
// saturate.
func sample(r *rand.Rand) Vector[uint8] {
	var v Vector[uint8]
	for i := range v.buckets {
		if r.IntN(2) == 0 {
			continue
		}
		v.buckets[i] = uint8(r.IntN(40))
	}
	return v
}

func TestSparse(t *testing.T) {
	assert.Equal(t, []Term[uint8]{{2, 1}}, vec(2).Sparse())
	assert.Equal(t, []Term[uint8]{{5, 2}, {3, 1}}, vec(5, 3).Sparse())
	assert.Equal(t, []Term[uint8]{{1, 3}, {5, 2}, {3, 1}}, vec(1, 5, 3).Sparse())
	assert.Equal(t, []Term[uint8]{{1, 3}, {3, 1}}, vec(1, 0, 3).Sparse())
	assert.Empty(t, Zero[uint8]().Sparse())
}

func TestIsZero(t *testing.T) {
	assert.True(t, vec(0, 0, 0, 0, 0).IsZero())
	assert.True(t, Zero[uint16]().IsZero())
	assert.False(t, vec(0, 1, 0).IsZero())
	assert.False(t, vec(1, 2, 3).IsZero())
}

func TestEquality(t *testing.T) {
	assert.NotEqual(t, vec(1, 2, 3), vec(0, 1, 0))
	assert.Equal(t, vec(0, 1, 0), vec(0, 1, 0))
	assert.Equal(t, vec(1, 0), vec(0, 0, 0, 1, 0))
	assert.Equal(t, Zero[uint8](), Vector[uint8]{})
	assert.Equal(t, Min[uint8](), Zero[uint8]())
}

func TestNew(t *testing.T) {
	assert.Equal(t, vec(3), New[uint8](3, 0))
	assert.Equal(t, vec(7, 0, 0), New[uint8](7, 2))
	assert.Equal(t, uint8(7), New[uint8](7, 2).Bucket(2))

	t.Run("clamps bucket index", func(t *testing.T) {
		assert.Equal(t, New[uint8](4, 0), New[uint8](4, -3))
		assert.Equal(t, New[uint8](4, Dimensions-1), New[uint8](4, Dimensions))
		assert.Equal(t, New[uint8](4, Dimensions-1), New[uint8](4, 1000))
		assert.Equal(t, uint8(4), New[uint8](4, 1000).Bucket(1000))
	})
}

func TestAdd(t *testing.T) {
	assert.Equal(t, vec(3), vec(1).Add(vec(2)))
	assert.Equal(t, vec(6, 0), vec(1, 0).Add(vec(5, 0)))
	assert.Equal(t, vec(4, 4, 4), vec(1, 2, 3).Add(vec(3, 2, 1)))
	assert.Equal(t, vec(1, 2, 3), Zero[uint8]().Add(vec(1, 2, 3)))

	a := vec(1, 2)
	_ = a.Add(vec(5, 5))
	assert.Equal(t, vec(1, 2), a, "Add must not mutate its receiver")
}

func TestAdd_Saturates(t *testing.T) {
	assert.Equal(t, vec(255), vec(250).Add(vec(10)))
	assert.Equal(t, vec(255, 3), vec(200, 1).Add(vec(100, 2)))
	assert.Equal(t, Max[uint8](), Max[uint8]().Add(Max[uint8]()))
	assert.Equal(t, New[uint16](65535, Dimensions-1), New[uint16](65000, Dimensions-1).Add(New[uint16](1000, Dimensions-1)))

	assert.Equal(t, uint8(255), SaturatingAdd[uint8](255, 1))
	assert.Equal(t, uint32(7), SaturatingAdd[uint32](3, 4))
	assert.Equal(t, uint64(1<<64-1), SaturatingAdd[uint64](1<<63, 1<<63))
}

func TestCompare_PrefersHighBuckets(t *testing.T) {
	assert.True(t, vec(0, 0, 1).Less(vec(0, 0, 2)))
	assert.True(t, vec(0, 0, 5).Less(vec(0, 2, 0)))
	assert.True(t, vec(2, 71, 88).Less(vec(3, 0, 0)))
	assert.True(t, New[uint8](255, 0).Less(New[uint8](1, 1)))
	assert.Equal(t, 0, vec(4, 5).Compare(vec(4, 5)))
	assert.Equal(t, 1, vec(4, 6).Compare(vec(4, 5)))
	assert.Equal(t, -1, vec(3, 9).Compare(vec(4, 0)))
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		cost Vector[uint8]
		want string
	}{
		{"zero", Zero[uint8](), "0 mutation"},
		{"single", vec(1), "1 1-letter mutation"},
		{"mixed", vec(1, 2), "1 2-letter mutation + 2 1-letter mutation"},
		{"gap", New[uint8](1, 10).Add(New[uint8](1, 7)), "1 11-letter mutation + 1 8-letter mutation"},
		{"catch-all", New[uint8](2, 99), "2 20-letter mutation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cost.String())
		})
	}
}

func TestLaws(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	zero := Zero[uint8]()
	for i := 0; i < 2000; i++ {
		a, b, c := sample(r), sample(r), sample(r)

		require.Equal(t, a, a.Add(zero), "identity")
		require.Equal(t, a, zero.Add(a), "identity")
		require.Equal(t, a.Add(b), b.Add(a), "commutativity")
		require.Equal(t, a.Add(b.Add(c)), a.Add(b).Add(c), "associativity")
		require.True(t, b.IsZero() || a.Add(b) != a, "non-zero addend must change the sum")

		require.Equal(t, 0, a.Compare(a), "reflexivity")
		require.True(t, a.Compare(b) <= 0 || b.Compare(a) <= 0, "totality")
		require.Equal(t, -a.Compare(b), b.Compare(a), "antisymmetry")
		if a.Compare(b) <= 0 && b.Compare(a) <= 0 {
			require.Equal(t, a, b, "antisymmetry")
		}
		if a.Compare(b) <= 0 && b.Compare(c) <= 0 {
			require.LessOrEqual(t, a.Compare(c), 0, "transitivity")
		}
		if a.Compare(b) <= 0 {
			require.LessOrEqual(t, a.Add(c).Compare(b.Add(c)), 0, "monotone on the left")
			require.LessOrEqual(t, c.Add(a).Compare(c.Add(b)), 0, "monotone on the right")
		}

		require.LessOrEqual(t, Min[uint8]().Compare(a), 0, "bounded below")
		require.LessOrEqual(t, a.Compare(Max[uint8]()), 0, "bounded above")
	}
}

func TestSubadditivity(t *testing.T) {
	assert.LessOrEqual(t, vec(3, 5, 4).Compare(vec(2, 5, 4).Add(vec(1, 5, 4))), 0)
	assert.LessOrEqual(t, vec(3, 5, 4).Compare(vec(2, 3, 1).Add(vec(1, 2, 3))), 0)
}
