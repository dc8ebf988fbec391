package skl

import (
	"math/bits"
	randv2 "math/rand/v2"
)

// slNode is a single vertex of the reference skip list.
type slNode[V any] struct {
	key      uint64
	value    V
	forwards []*slNode[V]
	backward *slNode[V]
}

// SkipList is a uint64-keyed ordered map implemented with a classic
// probabilistic skip list. It exists purely as the lock-based comparison
// point for MDList's own fine-grained-locking design; unlike MDList it
// serializes every operation behind one mutex at the call site (see
// compare_bench_test.go), trading concurrency for a much simpler structure.
type SkipList[V any] struct {
	level  uint
	length uint
	head   *slNode[V]
	tail   *slNode[V]
	config Config
	rng    randv2.Source
}

// InitSkipList creates a new empty SkipList using the provided configuration.
func InitSkipList[V any](config Config) (*SkipList[V], error) {
	rng := randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
	return &SkipList[V]{
		level:  config.skipListDefaultLevel,
		head:   &slNode[V]{forwards: make([]*slNode[V], config.skipListDefaultLevel)},
		config: config,
		rng:    rng,
	}, nil
}

// Put inserts or replaces the value associated with key.
func (list *SkipList[V]) Put(key uint64, newValue V) {
	rn := list.Head()
	rl := list.level
	update := make([]*slNode[V], list.config.skipListMaxLevel)
	for rl > 0 {
		rl--
		for rn.forwards[rl] != nil && rn.forwards[rl].key < key {
			rn = rn.forwards[rl]
		}
		update[rl] = rn
	}

	if rn.forwards[0] != nil {
		rn = rn.forwards[0]
	}
	if rn != list.Head() && rn.key == key {
		rn.value = newValue
		return
	}

	newLevel := list.randomLevel()
	if newLevel > list.level {
		rl := newLevel
		for rl > list.level {
			rl--
			update[rl] = list.Head()
			update[rl].forwards = append(update[rl].forwards, make([]*slNode[V], newLevel-list.level)...)
		}
		list.level = newLevel
	}

	newNode := &slNode[V]{key: key, value: newValue, forwards: make([]*slNode[V], list.level)}
	for newLevel > 0 {
		newLevel--
		newNode.forwards[newLevel] = update[newLevel].forwards[newLevel]
		update[newLevel].forwards[newLevel] = newNode
	}

	pred := update[0]
	succ := newNode.forwards[0]
	newNode.backward = pred
	if succ != nil {
		succ.backward = newNode
	} else {
		list.tail = newNode
	}

	list.length++
}

// Get retrieves the value associated with key. It returns ErrKeyNotFound if
// the key does not exist.
func (list *SkipList[V]) Get(key uint64) (V, error) {
	rn := list.Head()
	rl := list.level
	for rl > 0 {
		rl--
		for rn.forwards[rl] != nil && rn.forwards[rl].key < key {
			rn = rn.forwards[rl]
		}
	}
	if rn.forwards[0] != nil {
		rn = rn.forwards[0]
	}
	if rn != list.Head() && rn.key == key {
		return rn.value, nil
	}
	var empty V
	return empty, ErrKeyNotFound
}

// Remove deletes the node with the given key. It returns ErrKeyNotFound if
// the key is absent.
func (list *SkipList[V]) Remove(key uint64) error {
	rn := list.Head()
	rl := list.level
	update := make([]*slNode[V], list.config.skipListMaxLevel)
	for rl > 0 {
		rl--
		for rn.forwards[rl] != nil && rn.forwards[rl].key < key {
			rn = rn.forwards[rl]
		}
		update[rl] = rn
	}

	if rn.forwards[0] != nil {
		rn = rn.forwards[0]
	}
	if rn == list.Head() || rn.key != key {
		return ErrKeyNotFound
	}

	for i := 0; i < int(list.level); i++ {
		if update[i].forwards[i] != rn {
			break
		}
		update[i].forwards[i] = rn.forwards[i]
	}
	succ := rn.forwards[0]
	pred := rn.backward
	if succ != nil {
		succ.backward = pred
	}
	rn.backward = nil
	if list.tail == rn {
		if pred != nil && pred != list.Head() {
			list.tail = pred
		} else {
			list.tail = nil
		}
	}
	for list.level > 1 && list.Head().forwards[list.level-1] == nil {
		list.level--
	}

	list.length--
	return nil
}

// Head returns the head sentinel node of the list.
func (list *SkipList[V]) Head() *slNode[V] {
	if list == nil || list.head == nil {
		panic(ErrMalformedList)
	}
	return list.head
}

// Len returns the number of elements currently stored in the list.
func (list *SkipList[V]) Len() uint {
	if list == nil {
		panic(ErrMalformedList)
	}
	return list.length
}

const float64Unit = 1.0 / (1 << 53)

func (list *SkipList[V]) randomLevel() uint {
	lvl := uint(1)
	if list == nil || list.rng == nil {
		panic(ErrMalformedList)
	}

	maxLevel := list.config.skipListMaxLevel
	if maxLevel <= 1 {
		return lvl
	}

	if list.config.skipListP == 0.5 {
		zeros := uint(bits.TrailingZeros64(list.rng.Uint64()))
		if zeros > maxLevel-1 {
			zeros = maxLevel - 1
		}
		lvl += zeros
		return lvl
	}

	for lvl < maxLevel {
		randFloat := float64(list.rng.Uint64()>>11) * float64Unit
		if randFloat >= list.config.skipListP {
			break
		}
		lvl++
	}

	return lvl
}
