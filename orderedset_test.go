package listbench

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSet_Empty(t *testing.T) {
	s := NewOrderedSet()
	assert.False(t, s.Member(0))
	assert.False(t, s.Delete(0))
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Values())
	assert.True(t, s.Sorted())
}

func TestOrderedSet_InsertPositions(t *testing.T) {
	s := NewOrderedSet()
	for _, v := range []int{50, 10, 90, 30, 70} {
		require.True(t, s.Insert(v), "insert %d", v)
	}
	// head, middle and tail splices
	require.True(t, s.Insert(5))
	require.True(t, s.Insert(60))
	require.True(t, s.Insert(100))

	assert.Equal(t, []int{5, 10, 30, 50, 60, 70, 90, 100}, s.Values())
	assert.Equal(t, 8, s.Len())
	AssertOrdered(t, s)
}

func TestOrderedSet_InsertDuplicate(t *testing.T) {
	s := NewOrderedSet()
	require.True(t, s.Insert(7))
	require.True(t, s.Insert(3))
	before := s.Values()

	assert.False(t, s.Insert(7))
	assert.False(t, s.Insert(3))
	assert.Equal(t, before, s.Values())
	assert.Equal(t, 2, s.Len())
}

func TestOrderedSet_DeleteAbsentAndPositions(t *testing.T) {
	s := NewOrderedSet()
	for v := range 10 {
		s.Insert(v * 10)
	}
	before := s.Values()

	assert.False(t, s.Delete(5))
	assert.False(t, s.Delete(-1))
	assert.False(t, s.Delete(1000))
	assert.Equal(t, before, s.Values())

	assert.True(t, s.Delete(0))  // head
	assert.True(t, s.Delete(50)) // middle
	assert.True(t, s.Delete(90)) // tail
	assert.False(t, s.Delete(50))
	assert.Equal(t, []int{10, 20, 30, 40, 60, 70, 80}, s.Values())
	AssertOrdered(t, s)
}

// TestOrderedSet_MatchesModel replays random operations against a map and
// checks every result and the final contents.
func TestOrderedSet_MatchesModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s := NewOrderedSet()
	model := make(map[int]bool)

	for i := range 20000 {
		v := rng.IntN(300) // small range to force collisions
		op := Op(rng.IntN(int(numOps)))

		got := s.Apply(op, v)
		var want bool
		switch op {
		case OpMember:
			want = model[v]
		case OpInsert:
			want = !model[v]
			model[v] = true
		case OpDelete:
			want = model[v]
			delete(model, v)
		}
		require.Equal(t, want, got, "step %d: %v(%d)", i, op, v)

		if i%1000 == 0 {
			require.True(t, s.Sorted(), "step %d: chain out of order", i)
		}
	}

	want := make([]int, 0, len(model))
	for v := range model {
		want = append(want, v)
	}
	slices.Sort(want)
	assert.Equal(t, want, s.Values())
	AssertOrdered(t, s)
}

func TestOrderedSet_Populate(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	s := NewOrderedSet()
	s.Populate(5, rng)

	require.Equal(t, 5, s.Len())
	for _, v := range s.Values() {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, ValueRange)
	}
	AssertOrdered(t, s)

	s.Populate(1000, rng)
	assert.Equal(t, 1005, s.Len())
	AssertOrdered(t, s)
}

func TestOrderedSet_PopulateIsDeterministic(t *testing.T) {
	a, b := NewOrderedSet(), NewOrderedSet()
	a.Populate(200, rand.New(rand.NewPCG(9, 9)))
	b.Populate(200, rand.New(rand.NewPCG(9, 9)))
	assert.Equal(t, a.Values(), b.Values())
}
