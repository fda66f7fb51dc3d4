package pq_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netroute/pq"
)

// forEachVariant runs fn once per queue variant as a subtest.
func forEachVariant(t *testing.T, n int, fn func(t *testing.T, q pq.Queue)) {
	t.Helper()
	for _, v := range pq.Variants {
		v := v
		t.Run(v.String(), func(t *testing.T) {
			q, err := v.New(n)
			require.NoError(t, err)
			fn(t, q)
		})
	}
}

// drain extracts every queued id and returns ids and keys in extraction order.
func drain(t *testing.T, q pq.Queue) ([]int, []float64) {
	t.Helper()
	var ids []int
	var keys []float64
	for !q.IsEmpty() {
		id, key, err := q.DeleteMin()
		require.NoError(t, err)
		ids = append(ids, id)
		keys = append(keys, key)
	}

	return ids, keys
}

func TestVariant_ParseAndString(t *testing.T) {
	for _, v := range pq.Variants {
		got, err := pq.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := pq.ParseVariant("  HEAP ")
	require.NoError(t, err)
	assert.Equal(t, pq.Heap, got)

	_, err = pq.ParseVariant("fibonacci")
	assert.ErrorIs(t, err, pq.ErrUnknownVariant)

	_, err = pq.Variant(42).New(3)
	assert.ErrorIs(t, err, pq.ErrUnknownVariant)
	assert.Equal(t, "variant(42)", pq.Variant(42).String())
}

func TestVariant_TextRoundTrip(t *testing.T) {
	var v pq.Variant
	require.NoError(t, v.UnmarshalText([]byte("array")))
	assert.Equal(t, pq.Array, v)

	b, err := pq.Heap.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "heap", string(b))

	_, err = pq.Variant(-1).MarshalText()
	assert.ErrorIs(t, err, pq.ErrUnknownVariant)
	assert.ErrorIs(t, v.UnmarshalText([]byte("bogus")), pq.ErrUnknownVariant)
}

func TestQueue_EmptyDeleteMin(t *testing.T) {
	forEachVariant(t, 4, func(t *testing.T, q pq.Queue) {
		assert.True(t, q.IsEmpty())
		assert.Equal(t, 0, q.Len())
		_, _, err := q.DeleteMin()
		assert.ErrorIs(t, err, pq.ErrEmpty)
	})
}

func TestQueue_ZeroSize(t *testing.T) {
	forEachVariant(t, 0, func(t *testing.T, q pq.Queue) {
		assert.True(t, q.IsEmpty())
		assert.ErrorIs(t, q.Insert(0, 1), pq.ErrInvalidIndex)
	})
}

func TestQueue_InvalidIndex(t *testing.T) {
	forEachVariant(t, 3, func(t *testing.T, q pq.Queue) {
		assert.ErrorIs(t, q.Insert(-1, 0), pq.ErrInvalidIndex)
		assert.ErrorIs(t, q.Insert(3, 0), pq.ErrInvalidIndex)
		assert.ErrorIs(t, q.DecreaseKey(7, 0), pq.ErrInvalidIndex)
		assert.True(t, q.IsEmpty())
	})
}

func TestQueue_InsertTwiceRejected(t *testing.T) {
	forEachVariant(t, 3, func(t *testing.T, q pq.Queue) {
		require.NoError(t, q.Insert(1, 5))
		assert.ErrorIs(t, q.Insert(1, 2), pq.ErrPresent)
		assert.Equal(t, 1, q.Len())

		id, key, err := q.DeleteMin()
		require.NoError(t, err)
		assert.Equal(t, 1, id)
		assert.Equal(t, 5.0, key)
	})
}

func TestQueue_FinalizedNeverReturns(t *testing.T) {
	forEachVariant(t, 3, func(t *testing.T, q pq.Queue) {
		require.NoError(t, q.Insert(0, 1))
		id, _, err := q.DeleteMin()
		require.NoError(t, err)
		require.Equal(t, 0, id)

		assert.ErrorIs(t, q.Insert(0, 0), pq.ErrFinalized)
		require.NoError(t, q.DecreaseKey(0, -10))
		assert.True(t, q.IsEmpty(), "finalized id must not be requeued")
	})
}

func TestQueue_DecreaseKeyInsertsWhenAbsent(t *testing.T) {
	forEachVariant(t, 5, func(t *testing.T, q pq.Queue) {
		require.NoError(t, q.DecreaseKey(4, 3))
		require.NoError(t, q.DecreaseKey(2, 1))
		assert.Equal(t, 2, q.Len())

		ids, keys := drain(t, q)
		assert.Equal(t, []int{2, 4}, ids)
		assert.Equal(t, []float64{1, 3}, keys)
	})
}

func TestQueue_DecreaseKeyNeverRaises(t *testing.T) {
	forEachVariant(t, 3, func(t *testing.T, q pq.Queue) {
		require.NoError(t, q.Insert(0, 4))
		require.NoError(t, q.Insert(1, 5))
		require.NoError(t, q.DecreaseKey(0, 9)) // ignored
		require.NoError(t, q.DecreaseKey(0, 4)) // equal, ignored

		id, key, err := q.DeleteMin()
		require.NoError(t, err)
		assert.Equal(t, 0, id)
		assert.Equal(t, 4.0, key)
	})
}

func TestQueue_DecreaseKeyReorders(t *testing.T) {
	forEachVariant(t, 4, func(t *testing.T, q pq.Queue) {
		require.NoError(t, q.Insert(0, 10))
		require.NoError(t, q.Insert(1, 20))
		require.NoError(t, q.Insert(2, 30))
		require.NoError(t, q.Insert(3, 40))
		require.NoError(t, q.DecreaseKey(3, 5))

		ids, keys := drain(t, q)
		assert.Equal(t, []int{3, 0, 1, 2}, ids)
		assert.Equal(t, []float64{5, 10, 20, 30}, keys)
	})
}

func TestQueue_InfiniteKeys(t *testing.T) {
	forEachVariant(t, 3, func(t *testing.T, q pq.Queue) {
		require.NoError(t, q.Insert(2, math.Inf(1)))
		require.NoError(t, q.Insert(1, math.Inf(1)))
		require.NoError(t, q.Insert(0, 7))

		ids, _ := drain(t, q)
		assert.Equal(t, []int{0, 1, 2}, ids)
	})
}

func TestQueue_TieBreakLowestID(t *testing.T) {
	forEachVariant(t, 6, func(t *testing.T, q pq.Queue) {
		for _, id := range []int{5, 3, 1, 4, 0, 2} {
			require.NoError(t, q.Insert(id, 1))
		}

		ids, _ := drain(t, q)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, ids)
	})
}

func TestQueue_TieBreakAfterDecreaseKey(t *testing.T) {
	forEachVariant(t, 8, func(t *testing.T, q pq.Queue) {
		for id := 7; id >= 0; id-- {
			require.NoError(t, q.Insert(id, float64(10+id)))
		}
		// 6, 2 and 4 all drop to the same key; 3 stays above them.
		require.NoError(t, q.DecreaseKey(6, 5))
		require.NoError(t, q.DecreaseKey(4, 5))
		require.NoError(t, q.DecreaseKey(2, 5))
		require.NoError(t, q.DecreaseKey(3, 6))

		ids, keys := drain(t, q)
		assert.Equal(t, []int{2, 4, 6, 3, 0, 1, 5, 7}, ids)
		assert.Equal(t, []float64{5, 5, 5, 6, 10, 11, 15, 17}, keys)
	})
}

func TestQueue_VariantsExtractSameSequence(t *testing.T) {
	const n = 200
	var got [][]int
	for _, v := range pq.Variants {
		q, err := v.New(n)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(11))
		var order []int
		for i := 0; i < 6*n; i++ {
			if rng.Intn(4) == 0 && !q.IsEmpty() {
				id, _, err := q.DeleteMin()
				require.NoError(t, err)
				order = append(order, id)
				continue
			}
			// Few distinct keys, so ties are the common case.
			require.NoError(t, q.DecreaseKey(rng.Intn(n), float64(rng.Intn(5))))
		}
		ids, _ := drain(t, q)
		got = append(got, append(order, ids...))
	}
	assert.Equal(t, got[0], got[1])
}

func TestHeap_OneAndTwoElements(t *testing.T) {
	h := pq.NewHeap(2)
	require.NoError(t, h.Insert(0, 3))
	id, key, err := h.DeleteMin()
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, 3.0, key)
	assert.True(t, h.IsEmpty())

	h = pq.NewHeap(2)
	require.NoError(t, h.Insert(0, 9))
	require.NoError(t, h.Insert(1, 2))
	ids, keys := drain(t, h)
	assert.Equal(t, []int{1, 0}, ids)
	assert.Equal(t, []float64{2, 9}, keys)

	h = pq.NewHeap(3)
	require.NoError(t, h.Insert(0, 1))
	require.NoError(t, h.Insert(1, 2))
	require.NoError(t, h.Insert(2, 3))
	ids, _ = drain(t, h)
	assert.Equal(t, []int{0, 1, 2}, ids)
}

func TestQueue_RandomOperationsSorted(t *testing.T) {
	const n = 300
	rng := rand.New(rand.NewSource(7))
	forEachVariant(t, n, func(t *testing.T, q pq.Queue) {
		best := make(map[int]float64, n)
		for i := 0; i < 4*n; i++ {
			id := rng.Intn(n)
			key := math.Round(rng.Float64()*1000) / 10
			require.NoError(t, q.DecreaseKey(id, key))
			if cur, ok := best[id]; !ok || key < cur {
				best[id] = key
			}
		}
		require.Equal(t, len(best), q.Len())

		ids, keys := drain(t, q)
		assert.True(t, sort.Float64sAreSorted(keys), "keys must come out non-decreasing")
		seen := make(map[int]bool, len(ids))
		for i, id := range ids {
			assert.False(t, seen[id], "id %d extracted twice", id)
			seen[id] = true
			assert.Equal(t, best[id], keys[i])
		}
	})
}

func BenchmarkQueue_DecreaseKeyThenDrain(b *testing.B) {
	const n = 2000
	rng := rand.New(rand.NewSource(1))
	keys := make([]float64, n)
	for i := range keys {
		keys[i] = rng.Float64()
	}
	for _, v := range pq.Variants {
		b.Run(v.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				q, _ := v.New(n)
				for id, k := range keys {
					_ = q.DecreaseKey(id, k)
				}
				for !q.IsEmpty() {
					_, _, _ = q.DeleteMin()
				}
			}
		})
	}
}
