package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	id      int
	samples []float64
	resets  int
	inits   int
}

type counters struct {
	news, inits, resets int
}

func newRecords(t *testing.T, growth Growth, c *counters) *Objects[record] {
	t.Helper()
	next := 0
	objects, err := NewObjects(2, 4, growth, Lifecycle[record]{
		New: func() *record {
			c.news++
			next++
			return &record{id: next}
		},
		Init: func(r *record) {
			c.inits++
			r.inits++
			r.samples = make([]float64, 0, 8)
		},
		Reset: func(r *record) {
			c.resets++
			r.resets++
			r.samples = r.samples[:0]
		},
	})
	require.NoError(t, err)
	return objects
}

func TestObjectsGrowConstructs(t *testing.T) {
	var c counters
	objects := newRecords(t, Grow, &c)
	require.Zero(t, c.news)

	for i := range 10 {
		r := objects.Grow()
		require.Equal(t, i+1, r.id)
		require.Equal(t, 1, r.inits)
		require.Equal(t, 1, r.resets)
		require.NotNil(t, r.samples)
	}
	require.Equal(t, counters{10, 10, 10}, c)
	require.Equal(t, 10, objects.Len())
	require.True(t, objects.IsValidStructure())
}

func TestObjectsRecycle(t *testing.T) {
	var c counters
	objects := newRecords(t, GrowFirst, &c)
	require.NoError(t, objects.Resize(9))
	require.Equal(t, counters{9, 9, 9}, c)

	first := objects.Get(0)
	first.samples = append(first.samples, 1, 2, 3)

	objects.Reset()
	require.Equal(t, 0, objects.Len())

	// re-exposed slots are only reset
	require.NoError(t, objects.Resize(9))
	require.Equal(t, counters{9, 9, 18}, c)
	require.Same(t, first, objects.Get(0))
	require.Empty(t, first.samples)
	require.Equal(t, 2, first.resets)

	// growing past the previous maximum constructs only the new slots
	require.NoError(t, objects.Resize(12))
	require.Equal(t, counters{12, 12, 21}, c)

	objects.Reset()
	r := objects.Grow()
	require.Same(t, first, r)
	require.Equal(t, counters{12, 12, 22}, c)
}

func TestObjectsShrinkDoesNotReset(t *testing.T) {
	var c counters
	objects := newRecords(t, Fixed, &c)
	require.NoError(t, objects.Resize(6))
	require.NoError(t, objects.Resize(2))
	require.Equal(t, counters{6, 6, 6}, c)
	require.NoError(t, objects.Resize(4))
	require.Equal(t, counters{6, 6, 8}, c)
}

func TestObjectsPointersSurviveGrowth(t *testing.T) {
	var c counters
	objects := newRecords(t, Grow, &c)
	require.NoError(t, objects.SetInitialBlockSize(1))

	held := make([]*record, 0, 50)
	for range 50 {
		held = append(held, objects.Grow())
	}
	for i, r := range held {
		require.Same(t, r, objects.Get(i))
	}
	require.Equal(t, 13, objects.NumBlocks())
}

func TestObjectsRemoveSwap(t *testing.T) {
	var c counters
	objects := newRecords(t, Grow, &c)
	require.NoError(t, objects.Resize(7))

	removed := objects.Get(2)
	tail := objects.GetTail(0)
	objects.RemoveSwap(2)

	require.Equal(t, 6, objects.Len())
	require.Same(t, tail, objects.Get(2))

	// the removed instance is recycled by the next Grow
	r := objects.Grow()
	require.Same(t, removed, r)
	require.Equal(t, 7, c.news)
	require.Equal(t, 2, r.resets)
}

func TestObjectsChecked(t *testing.T) {
	objects, err := NewObjects(1, 8, Grow, Lifecycle[record]{})
	require.NoError(t, err)

	_, err = objects.At(0)
	require.ErrorIs(t, err, ErrOutOfRange)

	r := objects.Grow()
	require.NotNil(t, r)
	got, err := objects.At(0)
	require.NoError(t, err)
	require.Same(t, r, got)

	require.ErrorIs(t, objects.Resize(-1), ErrNegativeSize)
	require.ErrorIs(t, objects.Reserve(-1), ErrNegativeSize)
}

func TestObjectsReserveDoesNotConstruct(t *testing.T) {
	var c counters
	objects := newRecords(t, GrowFirst, &c)
	require.NoError(t, objects.Reserve(100))
	require.Zero(t, c.news)
	require.Equal(t, 100, objects.Cap())
	require.Equal(t, 25, objects.NumBlocks())
	require.Equal(t, 4, objects.BlockSize())
	require.Equal(t, GrowFirst, objects.Growth())
}

func TestObjectsTraversal(t *testing.T) {
	var c counters
	objects := newRecords(t, Grow, &c)
	require.NoError(t, objects.Resize(10))

	ids := []int{}
	objects.ForEach(3, 9, func(r *record) { ids = append(ids, r.id) })
	require.Equal(t, []int{4, 5, 6, 7, 8, 9}, ids)

	objects.ForIdx(0, 10, func(i int, r *record) {
		require.Equal(t, i+1, r.id)
	})

	n := 0
	for i, r := range objects.Items {
		require.Equal(t, i+1, r.id)
		n++
	}
	require.Equal(t, 10, n)

	m := objects.Metrics()
	require.Equal(t, 10, m.Size)
	require.Equal(t, 3, m.NumBlocks)
}

func TestNewObjectsInvalid(t *testing.T) {
	_, err := NewObjects(0, 4, Grow, Lifecycle[record]{})
	require.ErrorIs(t, err, ErrInvalidAllocation)

	_, err = NewObjects(4, -4, Grow, Lifecycle[record]{})
	require.ErrorIs(t, err, ErrInvalidBlockSize)
}
