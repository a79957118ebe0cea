package fastsearch

// scanPrework is the per-pattern state of the default and adaptive
// matchers.
type scanPrework[T CodeUnit] struct {
	pattern Indexer[T]
	n       int
	last    T
	// gap is the skip applied after a candidate whose last unit matched,
	// derived from the nearest earlier occurrence of the last unit.
	gap  int
	mask uint64
}

func newScanPrework[T CodeUnit](pattern Indexer[T]) *scanPrework[T] {
	n := pattern.Len()
	lastIdx := n - 1
	sp := &scanPrework[T]{
		pattern: pattern,
		n:       n,
		last:    pattern.Get(lastIdx),
		gap:     lastIdx,
	}
	for i := 0; i < lastIdx; i++ {
		ch := pattern.Get(i)
		bloomAdd(&sp.mask, ch)
		if ch == sp.last {
			sp.gap = lastIdx - i - 1
		}
	}
	bloomAdd(&sp.mask, sp.last)
	return sp
}

// handover configures the adaptive switch from the scan loop to Two-Way.
type handover[T CodeUnit] struct {
	// w is the Two-Way state, built lazily when nil.
	w            *prework[T]
	minRemaining int
}

// scan runs the last-unit anchored search. In find mode it returns the
// offset of the first match. In count mode it returns the number of
// non-overlapping matches up to maxCount, and ok is always true. A non-nil
// adapt enables the hand over to Two-Way once partial matches pile up.
func scan[T CodeUnit](haystack Indexer[T], sp *scanPrework[T], counting bool, maxCount int, adapt *handover[T]) (res int, ok bool) {
	n := sp.n
	width := haystack.Len() - n
	lastIdx := n - 1
	p := sp.pattern
	windowLast := haystack.Add(lastIdx)

	count, hits := 0, 0
	for i := 0; i <= width; i++ {
		if windowLast.Get(i) != sp.last {
			if !bloomFind(sp.mask, windowLast.Get(i+1)) {
				i += n
			}
			continue
		}

		j := 0
		for j < lastIdx && haystack.Get(i+j) == p.Get(j) {
			j++
		}
		if j == lastIdx {
			if !counting {
				return i, true
			}
			count++
			if count == maxCount {
				return count, true
			}
			i += lastIdx
			continue
		}

		if adapt != nil {
			hits += j + 1
			if hits > n/4 && width-i > adapt.minRemaining {
				if adapt.w == nil {
					adapt.w = preprocess(p)
				}
				rest := haystack.Add(i)
				if counting {
					return count + twoWayCount(rest, adapt.w, maxCount-count), true
				}
				k, found := twoWay(rest, adapt.w)
				return k + i, found
			}
		}

		if !bloomFind(sp.mask, windowLast.Get(i+1)) {
			i += n
		} else {
			i += sp.gap
		}
	}
	if counting {
		return count, true
	}
	return 0, false
}

func defaultFind[T CodeUnit](haystack Indexer[T], sp *scanPrework[T]) (int, bool) {
	return scan(haystack, sp, false, 0, nil)
}

func defaultCount[T CodeUnit](haystack Indexer[T], sp *scanPrework[T], maxCount int) int {
	c, _ := scan(haystack, sp, true, maxCount, nil)
	return c
}

func adaptiveFind[T CodeUnit](haystack Indexer[T], sp *scanPrework[T], w *prework[T], minRemaining int) (int, bool) {
	return scan(haystack, sp, false, 0, &handover[T]{w: w, minRemaining: minRemaining})
}

func adaptiveCount[T CodeUnit](haystack Indexer[T], sp *scanPrework[T], w *prework[T], maxCount, minRemaining int) int {
	c, _ := scan(haystack, sp, true, maxCount, &handover[T]{w: w, minRemaining: minRemaining})
	return c
}
