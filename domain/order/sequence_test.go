package order

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"
)

func TestSequenceStartsAfterLast(t *testing.T) {
	ids := NewSequence(0)
	assert.Equal(t, int64(1), ids.Next())
	assert.Equal(t, int64(2), ids.Next())
	assert.Equal(t, int64(2), ids.Last())

	resumed := NewSequence(41)
	assert.Equal(t, int64(42), resumed.Next())
}

func TestSequenceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.Int64Range(0, 1<<40).Draw(t, "k")
		n := rapid.IntRange(1, 200).Draw(t, "n")

		ids := NewSequence(k)
		for i := 1; i <= n; i++ {
			if got := ids.Next(); got != k+int64(i) {
				t.Fatalf("id %d = %d, want %d", i, got, k+int64(i))
			}
		}
	})
}

func TestSequenceConcurrentUniqueness(t *testing.T) {
	const workers = 16
	const perWorker = 500

	ids := NewSequence(100)
	results := make([][]int64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			got := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				got = append(got, ids.Next())
			}
			results[w] = got
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var all []int64
	for _, r := range results {
		// each goroutine observes strictly increasing ids
		assert.True(t, sort.SliceIsSorted(r, func(i, j int) bool { return r[i] < r[j] }))
		all = append(all, r...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	require.Len(t, all, workers*perWorker)
	for i, id := range all {
		require.Equal(t, int64(101+i), id, "ids must be dense and unique")
	}
	t.Log("✓ Concurrent id uniqueness passed")
}
