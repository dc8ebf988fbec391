package mdlist

import (
	"math/bits"
	"runtime"
	"sync/atomic"
)

// metricShard holds one shard's worth of counters, padded to a cache line so
// concurrent goroutines hitting different shards don't false-share.
type metricShard struct {
	structRetries atomic.Int64
	installs      atomic.Int64
	removes       atomic.Int64
	length        atomic.Int64
	_             [32]byte
}

// Metrics tracks contention and population counters for an MDList, sharded
// by a hash of the retry-loop's backoff RNG so high-contention workloads
// don't bottleneck on a single cache line.
type Metrics struct {
	shards []metricShard
	mask   uint32
	b      *backoff
}

func newMetrics(b *backoff) *Metrics {
	shardCount := 1
	if b != nil {
		shardCount = runtime.GOMAXPROCS(0)
		if shardCount < 1 {
			shardCount = 1
		}
		shardCount = nextPowerOfTwo(shardCount)
	}
	return &Metrics{
		shards: make([]metricShard, shardCount),
		mask:   uint32(shardCount - 1),
		b:      b,
	}
}

func nextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(v-1))
}

func (m *Metrics) shard() *metricShard {
	if len(m.shards) == 1 || m.b == nil {
		return &m.shards[0]
	}
	idx := uint32(m.b.next64()) & m.mask
	return &m.shards[idx]
}

func (m *Metrics) incStructRetry() { m.shard().structRetries.Add(1) }
func (m *Metrics) incInstall()     { m.shard().installs.Add(1) }
func (m *Metrics) incRemove()      { m.shard().removes.Add(1) }
func (m *Metrics) addLen(d int64)  { m.shard().length.Add(d) }

// Len returns the number of live keys currently stored, not counting key 0
// (the root sentinel), whose value slot is never added to the length counter.
func (m *Metrics) Len() int64 {
	var total int64
	for i := range m.shards {
		total += m.shards[i].length.Load()
	}
	return total
}

// RetryStats reports the total structural-lock retries and successful
// installs observed across all shards, for contention analysis in benchmarks.
func (m *Metrics) RetryStats() (retries, installs int64) {
	for i := range m.shards {
		retries += m.shards[i].structRetries.Load()
		installs += m.shards[i].installs.Load()
	}
	return
}
