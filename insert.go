package mdlist

// Insert links key/value into the coordinate lattice, or overwrites the
// value in place if key is already present (spec.md §4.3.2). Out-of-range
// keys are silently ignored (spec.md §6).
func (l *MDList[T]) Insert(key uint64, value T) {
	if key >= l.n {
		return
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

		p2, cur2 := l.locate(c)
		if p2 != p || cur2 != cur {
			unlockPair(p, cur)
			l.metrics.incStructRetry()
			l.backoffWait(&attempt)
			continue
		}

		if locateRevalidateHook != nil {
			locateRevalidateHook(key)
		}

		if cur != nil && cur.key == key {
			cur.setValue(value)
			unlockPair(p, cur)
			return
		}

		// A non-root key always descends through at least one child slot
		// of the root sentinel before locate can return it as predecessor
		// or land on a nil current, so p is never nil past this point.
		dStar := -1
		for d := 0; d < l.d; d++ {
			if c[d] > p.coord[d] {
				dStar = d
				break
			}
		}
		if dStar == -1 {
			unlockPair(p, cur)
			panic(invariantViolation{reason: "no splice dimension for key", key: key})
		}

		x := newNode[T](key, c, l.d, value)

		if cur != nil {
			for d := dStar; d < l.d; d++ {
				if c[d] < cur.coord[d] {
					x.children[d] = cur
					break
				}
				// c[d] == cur.coord[d]: cur's slot d subtree moves under x.
				x.children[d] = cur.getChild(d)
				cur.setChild(d, nil)
			}
		}

		if installHook != nil {
			installHook(key)
		}

		p.setChild(dStar, x)
		unlockPair(p, cur)

		l.metrics.incInstall()
		l.metrics.addLen(1)
		return
	}
}
