package fastsearch

// twoWay searches haystack for the pattern described by w and returns the
// logical offset of the first match.
func twoWay[T CodeUnit](haystack Indexer[T], w *prework[T]) (int, bool) {
	if w.periodic {
		return twoWayPeriodic(haystack, w)
	}
	return twoWayNonPeriodic(haystack, w)
}

// skip slides the window end forward until its unit is the pattern's last
// unit modulo the shift table. It reports false when the window runs off
// the haystack.
func (w *prework[T]) skip(windowLast *Indexer[T], end Indexer[T]) bool {
	for shift := w.table[uint64(windowLast.Get(0))&tableMask]; shift != 0; shift = w.table[uint64(windowLast.Get(0))&tableMask] {
		windowLast.Advance(int(shift))
		if !windowLast.Less(end) {
			return false
		}
	}
	return true
}

// eq reports whether pattern unit i matches window unit i.
func (w *prework[T]) eq(window Indexer[T], i int) bool {
	if w.compares != nil {
		*w.compares++
	}
	return w.pattern.Get(i) == window.Get(i)
}

func twoWayPeriodic[T CodeUnit](haystack Indexer[T], w *prework[T]) (int, bool) {
	n, cut, period := w.n, w.cut, w.period
	windowLast := haystack.Add(n - 1)
	end := haystack.Add(haystack.Len())
	memory := 0

outer:
	for windowLast.Less(end) {
		if !w.skip(&windowLast, end) {
			return 0, false
		}
		window := windowLast.Sub(n - 1)

		for i := max(cut, memory); i < n; i++ {
			if !w.eq(window, i) {
				windowLast.Advance(i - cut + 1)
				memory = 0
				continue outer
			}
		}
		for i := memory; i < cut; i++ {
			if !w.eq(window, i) {
				windowLast.Advance(period)
				memory = n - period
				if !windowLast.Less(end) {
					return 0, false
				}
				shift := int(w.table[uint64(windowLast.Get(0))&tableMask])
				if shift != 0 {
					// The left part is known good up to memory, but the
					// table proves the next alignment cannot match.
					memJump := max(cut, memory) - cut + 1
					memory = 0
					windowLast.Advance(max(shift, memJump))
				}
				continue outer
			}
		}
		return window.Distance(haystack), true
	}
	return 0, false
}

func twoWayNonPeriodic[T CodeUnit](haystack Indexer[T], w *prework[T]) (int, bool) {
	n, cut, gap := w.n, w.cut, w.gap
	period := max(gap, w.period)
	gapJumpEnd := min(n, cut+gap)
	windowLast := haystack.Add(n - 1)
	end := haystack.Add(haystack.Len())

outer:
	for windowLast.Less(end) {
		if !w.skip(&windowLast, end) {
			return 0, false
		}
		window := windowLast.Sub(n - 1)

		for i := cut; i < gapJumpEnd; i++ {
			if !w.eq(window, i) {
				windowLast.Advance(gap)
				continue outer
			}
		}
		for i := gapJumpEnd; i < n; i++ {
			if !w.eq(window, i) {
				windowLast.Advance(i - cut + 1)
				continue outer
			}
		}
		for i := 0; i < cut; i++ {
			if !w.eq(window, i) {
				windowLast.Advance(period)
				continue outer
			}
		}
		return window.Distance(haystack), true
	}
	return 0, false
}

// twoWayCount counts non-overlapping matches of w in haystack, stopping at
// maxCount.
func twoWayCount[T CodeUnit](haystack Indexer[T], w *prework[T], maxCount int) int {
	count, offset := 0, 0
	for count < maxCount {
		i, ok := twoWay(haystack.Add(offset), w)
		if !ok {
			break
		}
		count++
		offset += i + w.n
	}
	return count
}
