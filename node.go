package mdlist

import "sync"

// node is a single vertex of the coordinate lattice. coord is fixed at
// construction; value and children live behind their own locks so readers
// (Find, locate) never contend with the structural lock insert/remove hold
// while splicing the tree.
type node[T any] struct {
	key   uint64
	coord []uint32

	valueMu sync.Mutex
	value   T
	present bool

	childMu  sync.Mutex
	children []*node[T]

	structMu sync.Mutex
}

func newNode[T any](key uint64, coord []uint32, d int, value T) *node[T] {
	n := &node[T]{
		key:      key,
		coord:    coord,
		children: make([]*node[T], d),
	}
	n.value = value
	n.present = true
	return n
}

// newSentinel builds the never-deleted root node: key 0, an all-zero
// coordinate, and no value until something inserts key 0.
func newSentinel[T any](d int) *node[T] {
	return &node[T]{
		key:      0,
		coord:    make([]uint32, d),
		children: make([]*node[T], d),
	}
}

func (n *node[T]) getValue() (T, bool) {
	n.valueMu.Lock()
	defer n.valueMu.Unlock()
	return n.value, n.present
}

func (n *node[T]) setValue(v T) {
	n.valueMu.Lock()
	n.value = v
	n.present = true
	n.valueMu.Unlock()
}

// clearValue drops the value slot without unlinking the node. Used only for
// the root sentinel, which is never removed from the tree.
func (n *node[T]) clearValue() (T, bool) {
	n.valueMu.Lock()
	defer n.valueMu.Unlock()
	old, ok := n.value, n.present
	var zero T
	n.value = zero
	n.present = false
	return old, ok
}

func (n *node[T]) getChild(d int) *node[T] {
	if d < 0 || d >= len(n.children) {
		panic(invariantViolation{reason: "child index out of bounds", key: n.key, dim: d})
	}
	n.childMu.Lock()
	defer n.childMu.Unlock()
	return n.children[d]
}

func (n *node[T]) setChild(d int, child *node[T]) {
	if d < 0 || d >= len(n.children) {
		panic(invariantViolation{reason: "child index out of bounds", key: n.key, dim: d})
	}
	n.childMu.Lock()
	n.children[d] = child
	n.childMu.Unlock()
}

// lock acquires the structural lock unconditionally. No insert/remove path
// calls it (the retry loops use tryLock, and removing key 0 only clears the
// root's value slot); only the tests use it.
func (n *node[T]) lock() {
	n.structMu.Lock()
}

func (n *node[T]) tryLock() bool {
	return n.structMu.TryLock()
}

func (n *node[T]) unlock() {
	n.structMu.Unlock()
}
