package mdlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBackoffDelayNeverNegative(t *testing.T) {
	b := newBackoffWithSeed(0x123456789abcdef)
	for attempt := 0; attempt < 12; attempt++ {
		require.GreaterOrEqual(t, b.delay(attempt), time.Duration(0))
	}
}

func TestBackoffDelayDeterministicForSeed(t *testing.T) {
	a := newBackoffWithSeed(42)
	b := newBackoffWithSeed(42)
	for attempt := 0; attempt < 5; attempt++ {
		require.Equal(t, a.delay(attempt), b.delay(attempt))
	}
}

func TestBackoffDelayCapsAtHighAttempts(t *testing.T) {
	b := newBackoffWithSeed(7)
	uncapped := b.delay(9)
	capped := b.delay(30)
	// Past the cap, growth stops: the capped delay's range ceiling matches
	// attempt 10's, not an ever-increasing one.
	require.LessOrEqual(t, capped, 2*uncapped+time.Second)
}

func TestBackoffZeroSeedFallsBackToDefault(t *testing.T) {
	b := newBackoffWithSeed(0)
	require.NotZero(t, b.seed)
}

func BenchmarkBackoffNext64(b *testing.B) {
	back := newBackoff()
	for i := 0; i < b.N; i++ {
		back.next64()
	}
}
