package mdlist

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var errRemoveMismatch = errors.New("concurrent remove returned an unexpected value")

// Property 7: inserting a partition of {0,...,K-1} from multiple goroutines
// produces a structure where every key is findable.
func TestConcurrentInsertPartitionIsFindable(t *testing.T) {
	const d, n, k, workers = 3, uint64(64*64*64), uint64(4000), 4
	l := New[uint64](d, n)

	var g errgroup.Group
	chunk := k / workers
	for w := uint64(0); w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if w == workers-1 {
			hi = k
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				l.Insert(i, i)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := uint64(0); i < k; i++ {
		v, ok := l.Find(i)
		require.True(t, ok, "key %d missing", i)
		require.Equal(t, i, v)
	}
}

// Property 8: inserting {1,...,K-1} single-threaded, then removing the same
// set via disjoint concurrent slices, leaves every key absent.
func TestConcurrentDisjointRemoveDrainsAllKeys(t *testing.T) {
	const d, n, k, workers = 3, uint64(64*64*64), uint64(4000), 4
	l := New[uint64](d, n)

	for i := uint64(1); i < k; i++ {
		l.Insert(i, i)
	}

	var g errgroup.Group
	for w := uint64(0); w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := uint64(1) + w; i < k; i += workers {
				v, ok := l.Remove(i)
				if !ok || v != i {
					return errRemoveMismatch
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := uint64(1); i < k; i++ {
		_, ok := l.Find(i)
		require.False(t, ok, "key %d still present", i)
	}
}

// Property 9: T goroutines running lock/get/set(v+1)/unlock on a single
// node's value slot produce no lost updates.
func TestConcurrentValueIncrementHasNoLostUpdates(t *testing.T) {
	l := New[int](2, 256)
	l.Insert(7, 0)

	_, cur := l.locate(keyToCoord(7, l.d, l.m))
	require.NotNil(t, cur)

	const goroutines = 64
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			cur.lock()
			v, _ := cur.getValue()
			cur.setValue(v + 1)
			cur.unlock()
		}()
	}
	wg.Wait()

	v, ok := l.Find(7)
	require.True(t, ok)
	require.Equal(t, goroutines, v)
}

// S5: 4 goroutines each insert 1000 disjoint keys; every key is findable
// after join.
func TestScenarioS5ConcurrentDisjointInsert(t *testing.T) {
	const d, n, workers, perWorker = 8, uint64(1) << 32, 4, 1000
	l := New[uint64](d, n)

	var g errgroup.Group
	for w := uint64(0); w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w * perWorker; i < (w+1)*perWorker; i++ {
				l.Insert(i, i)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := uint64(0); i < workers*perWorker; i++ {
		v, ok := l.Find(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

// S6: same setup as S5, then 4 goroutines concurrently remove a shuffled
// partition; every key ends up absent.
func TestScenarioS6ConcurrentShuffledRemove(t *testing.T) {
	const d, n, workers, perWorker = 8, uint64(1) << 32, 4, 1000
	l := New[uint64](d, n)

	total := uint64(workers * perWorker)
	for i := uint64(0); i < total; i++ {
		l.Insert(i, i)
	}

	keys := make([]uint64, total-1)
	for i := range keys {
		keys[i] = uint64(i) + 1
	}
	r := rand.New(rand.NewSource(1))
	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	var g errgroup.Group
	share := len(keys) / workers
	for w := 0; w < workers; w++ {
		lo, hi := w*share, (w+1)*share
		if w == workers-1 {
			hi = len(keys)
		}
		slice := keys[lo:hi]
		g.Go(func() error {
			for _, k := range slice {
				l.Remove(k)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := uint64(1); i < total; i++ {
		_, ok := l.Find(i)
		require.False(t, ok)
	}
}
