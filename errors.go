package mdlist

import "fmt"

// invariantViolation is raised by panic when the dimension-gated subtree
// invariant (spec.md §3) is found broken during insert or remove — a key
// with no valid splice dimension, or a parent slot that no longer points at
// the child it's supposed to. Both indicate a bug in the structural surgery,
// not a caller error, so this is not a returned error: callers must not
// catch and retry (spec.md §7).
type invariantViolation struct {
	reason string
	key    uint64
	dim    int
}

func (e invariantViolation) Error() string {
	return fmt.Sprintf("mdlist: invariant violation: %s (key=%d dim=%d)", e.reason, e.key, e.dim)
}
