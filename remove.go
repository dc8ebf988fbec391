package mdlist

// Remove unlinks key's node from the coordinate lattice and returns the
// value it held, or (zero, false) if the key was absent (spec.md §4.3.4).
// Key 0, the root sentinel, is never unlinked: removing it only clears its
// value slot. A detached node is left for the garbage collector rather than
// recycled: a concurrent Find that captured the pointer before the splice
// may still be mid-traversal through it, and nothing tracks when the last
// such reader is done with it (spec.md §9's "simpler reimplementation"
// allowance over building real deferred reclamation).
func (l *MDList[T]) Remove(key uint64) (T, bool) {
	var zero T
	if key >= l.n {
		return zero, false
	}
	if key == 0 {
		return l.root.clearValue()
	}

	c := keyToCoord(key, l.d, l.m)
	attempt := 0
	for {
		p, cur := l.locate(c)

		if !tryLockPair(p, cur) {
			l.metrics.incStructRetry()
			l.backoffWait(&attempt)
			continue
		}

		if cur == nil || cur.key != key {
			unlockPair(p, cur)
			return zero, false
		}

		d := -1
		for dd := 0; dd < l.d; dd++ {
			if p.getChild(dd) == cur {
				d = dd
				break
			}
		}
		if d == -1 {
			unlockPair(p, cur)
			panic(invariantViolation{reason: "parent slot not found for key", key: key})
		}

		var r *node[T]
		rd := -1
		for dd := l.d - 1; dd >= 0; dd-- {
			if child := cur.getChild(dd); child != nil {
				r, rd = child, dd
				break
			}
		}

		if r != nil && !r.tryLock() {
			unlockPair(p, cur)
			l.metrics.incStructRetry()
			l.backoffWait(&attempt)
			continue
		}

		p2, cur2 := l.locate(c)
		if p2 != p || cur2 != cur || cur2.key != key {
			if r != nil {
				r.unlock()
			}
			unlockPair(p, cur)
			l.metrics.incStructRetry()
			l.backoffWait(&attempt)
			continue
		}

		if locateRevalidateHook != nil {
			locateRevalidateHook(key)
		}

		if r != nil {
			for dd := 0; dd < rd; dd++ {
				r.setChild(dd, cur.getChild(dd))
			}
		}

		if spliceHook != nil {
			spliceHook(key)
		}

		p.setChild(d, r)

		if r != nil {
			r.unlock()
		}
		unlockPair(p, cur)

		value, _ := cur.getValue()
		l.metrics.incRemove()
		l.metrics.addLen(-1)
		return value, true
	}
}
