// Package skl is a small single-threaded ordered map keyed by uint64, used
// only as the reference arm of MDList's comparison benchmark (see
// compare_bench_test.go in the parent package, which guards it with one
// mutex at the call site). It holds no lock of its own and is not part of
// the MDList core.
package skl

import "errors"

// ErrKeyNotFound is returned when a key is not found in the SkipList.
var ErrKeyNotFound = errors.New("key not found")

// ErrMalformedList is returned when a SkipList is used before InitSkipList.
var ErrMalformedList = errors.New("the list was not init-ed properly")

// Config holds tuning parameters for the reference SkipList.
type Config struct {
	skipListDefaultLevel uint
	skipListMaxLevel     uint
	skipListP            float64
}

// NewConfig returns a Config with the teacher's default level/probability
// parameters.
func NewConfig() Config {
	return Config{
		skipListDefaultLevel: 2,
		skipListMaxLevel:     32,
		skipListP:            0.5,
	}
}

// WithSkipListMaxLevel sets the maximum height of the skip list.
func WithSkipListMaxLevel(maxLevel uint) func(*Config) {
	return func(c *Config) { c.skipListMaxLevel = maxLevel }
}

// WithSkipListP sets the probability for skip list level promotion.
func WithSkipListP(p float64) func(*Config) {
	return func(c *Config) { c.skipListP = p }
}
