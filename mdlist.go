// Package mdlist implements the Multi-Dimensional List: a concurrent,
// in-memory ordered associative container keyed by unsigned integers in a
// bounded key space [0, N). Keys are viewed as D-digit numbers in a
// mixed-radix coordinate system and threaded through a D-way linked
// structure that forms a search DAG rooted at a sentinel zero node.
package mdlist

import "time"

// MDList is a concurrent ordered map from uint64 keys in [0, N) to values of
// type T, organized as a D-dimensional coordinate lattice. Insert, Find, and
// Remove are safe to call from many goroutines concurrently.
type MDList[T any] struct {
	d int
	n uint64
	m uint64

	root *node[T]

	backoff *backoff
	metrics *Metrics
}

// New constructs an MDList over the key space [0, N) using a D-dimensional
// coordinate lattice with per-dimension radix M = ceil(N^(1/D)).
func New[T any](d int, n uint64) *MDList[T] {
	if d < 1 {
		panic(invariantViolation{reason: "dimension must be >= 1", dim: d})
	}
	b := newBackoff()
	return &MDList[T]{
		d:       d,
		n:       n,
		m:       radixFor(n, d),
		root:    newSentinel[T](d),
		backoff: b,
		metrics: newMetrics(b),
	}
}

// Find returns the value stored for key, or (zero, false) if key is absent
// or out of [0, N). Find takes no structural locks (spec.md §4.3.3): it
// observes its linearization point at the single get_value read.
func (l *MDList[T]) Find(key uint64) (T, bool) {
	var zero T
	if key >= l.n {
		return zero, false
	}
	c := keyToCoord(key, l.d, l.m)
	_, cur := l.locate(c)
	if cur != nil && cur.key == key {
		return cur.getValue()
	}
	return zero, false
}

// Len reports the number of keys installed via Insert and not yet removed
// via Remove. Key 0 (the root sentinel) is never installed or removed
// through that path, so its presence is not reflected here; use Find(0) to
// check it directly.
func (l *MDList[T]) Len() int64 {
	return l.metrics.Len()
}

// backoffWait sleeps a jittered, growing delay between retries of the
// insert/remove locking protocol (spec.md §9, "Retry loop and fairness").
func (l *MDList[T]) backoffWait(attempt *int) {
	time.Sleep(l.backoff.delay(*attempt))
	*attempt++
}

// tryLockPair acquires the structural locks of p then c, in that fixed
// order, via TryLock. A nil participant needs no lock (spec.md §4.3.2 step
// 4). On partial failure, whatever was acquired is released before
// returning false.
func tryLockPair[T any](p, c *node[T]) bool {
	if p != nil && !p.tryLock() {
		return false
	}
	if c != nil && !c.tryLock() {
		if p != nil {
			p.unlock()
		}
		return false
	}
	return true
}

func unlockPair[T any](p, c *node[T]) {
	if c != nil {
		c.unlock()
	}
	if p != nil {
		p.unlock()
	}
}
