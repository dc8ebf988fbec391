package mdlist

// locate walks the coordinate lattice from the root sentinel toward the
// target coordinate, descending one dimension's child slot at a time. It
// takes no structural locks — only get_child reads — so it's safe to run
// concurrently with structural mutation; callers that need a stable
// (predecessor, current) pair revalidate by calling locate again after
// acquiring locks (spec.md §4.3.2 step 5, §4.3.4 step 8).
//
// On an exact match, current.key == the key locate was called for and
// current.coord == target. On a miss, target belongs strictly between
// predecessor and current (or into an empty slot of predecessor if current
// is nil).
func (l *MDList[T]) locate(target []uint32) (predecessor, current *node[T]) {
	current = l.root
	d := 0

	for current != nil && d < l.d {
		if target[d] > current.coord[d] {
			predecessor = current
			current = current.getChild(d)
			continue
		}
		if target[d] < current.coord[d] {
			return predecessor, current
		}
		d++
	}

	return predecessor, current
}
