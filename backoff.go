package mdlist

import (
	"math/rand/v2"
	"sync"
	"time"
)

// backoff produces small jittered delays for the insert/remove retry loops,
// per spec.md §9 ("Retry loop and fairness"): a bounded spin-then-restart
// needs some randomization to avoid pathological livelock under contention.
// It shares its source with Metrics' shard picker (metrics.go), so the same
// generator serves both consumers.
type backoff struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed uint64
}

const defaultBackoffSeed = uint64(0xdeadbeefcafebabe)

func newBackoff() *backoff {
	return &backoff{
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		seed: rand.Uint64(),
	}
}

// newBackoffWithSeed builds a backoff whose draw sequence is fully
// determined by seed, for reproducible tests. A zero seed is replaced by a
// fixed nonzero constant, so the recorded seed is never zero.
func newBackoffWithSeed(seed uint64) *backoff {
	if seed == 0 {
		seed = defaultBackoffSeed
	}
	return &backoff{
		rng:  rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

func (b *backoff) next64() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rng.Uint64()
}

// delay returns a jittered backoff duration that grows with the retry
// count, capped so a storm of contending goroutines doesn't stall for long.
func (b *backoff) delay(attempt int) time.Duration {
	const capAttempts = 10
	if attempt > capAttempts {
		attempt = capAttempts
	}
	base := uint64(1) << uint(attempt)
	jitter := b.next64() % (base + 1)
	ns := (base + jitter) * uint64(time.Microsecond)
	return time.Duration(ns)
}
