package fastsearch

import "math"

// Find returns the offset of the first occurrence of pattern in haystack, or
// of the last occurrence when fromRight is set. Offsets always count from
// the start of haystack. An empty pattern is never found.
func Find[T CodeUnit](haystack, pattern []T, fromRight bool) (int, bool) {
	return find(haystack, pattern, fromRight, Auto, DefaultTuning(), nil)
}

// Count returns the number of non-overlapping occurrences of pattern in
// haystack, stopping once maxCount is reached. A negative maxCount counts
// every occurrence. With fromRight set, matches are taken right to left,
// which only differs for patterns that overlap themselves.
func Count[T CodeUnit](haystack, pattern []T, maxCount int, fromRight bool) int {
	return count(haystack, pattern, maxCount, fromRight, Auto, DefaultTuning(), nil)
}

// Index returns the offset of the first occurrence of pattern in haystack,
// or -1.
func Index[T CodeUnit](haystack, pattern []T) int {
	if i, ok := Find(haystack, pattern, false); ok {
		return i
	}
	return -1
}

// LastIndex returns the offset of the last occurrence of pattern in
// haystack, or -1.
func LastIndex[T CodeUnit](haystack, pattern []T) int {
	if i, ok := Find(haystack, pattern, true); ok {
		return i
	}
	return -1
}

// Contains reports whether pattern occurs in haystack.
func Contains[T CodeUnit](haystack, pattern []T) bool {
	_, ok := Find(haystack, pattern, false)
	return ok
}

// plan holds the preprocessed state of a pattern for one direction. Fields
// left nil are computed on first use.
type plan[T CodeUnit] struct {
	pattern Indexer[T]
	sp      *scanPrework[T]
	tw      *prework[T]
}

func newPlan[T CodeUnit](pattern []T, dir Direction) *plan[T] {
	return &plan[T]{pattern: newDirected(pattern, dir)}
}

func (pl *plan[T]) scanPrework() *scanPrework[T] {
	if pl.sp == nil {
		pl.sp = newScanPrework(pl.pattern)
	}
	return pl.sp
}

func (pl *plan[T]) twoWayPrework() *prework[T] {
	if pl.tw == nil {
		pl.tw = preprocess(pl.pattern)
	}
	return pl.tw
}

// resolve maps a requested strategy to the one actually run.
func resolve(strategy Strategy, t Tuning, h, p int) Strategy {
	if strategy == Auto || (strategy == SingleUnit && p != 1) {
		return t.Choose(h, p)
	}
	return strategy
}

func direction(fromRight bool) Direction {
	if fromRight {
		return Reverse
	}
	return Forward
}

func find[T CodeUnit](haystack, pattern []T, fromRight bool, strategy Strategy, t Tuning, pl *plan[T]) (int, bool) {
	n := len(pattern)
	if n == 0 || len(haystack) < n {
		return 0, false
	}
	strategy = resolve(strategy, t, len(haystack), n)
	if strategy == SingleUnit {
		if fromRight {
			return rfindChar(haystack, pattern[0])
		}
		return findChar(haystack, pattern[0])
	}

	dir := direction(fromRight)
	if pl == nil {
		pl = newPlan(pattern, dir)
	}
	hs := newDirected(haystack, dir)

	var i int
	var ok bool
	switch strategy {
	case DefaultScan:
		i, ok = defaultFind(hs, pl.scanPrework())
	case TwoWay:
		i, ok = twoWay(hs, pl.twoWayPrework())
	default:
		i, ok = adaptiveFind(hs, pl.scanPrework(), pl.tw, t.AdaptiveMinRemaining)
	}
	if ok && fromRight {
		i = len(haystack) - n - i
	}
	return i, ok
}

func count[T CodeUnit](haystack, pattern []T, maxCount int, fromRight bool, strategy Strategy, t Tuning, pl *plan[T]) int {
	n := len(pattern)
	if n == 0 || len(haystack) < n || maxCount == 0 {
		return 0
	}
	if maxCount < 0 {
		maxCount = math.MaxInt
	}
	strategy = resolve(strategy, t, len(haystack), n)
	if strategy == SingleUnit {
		return countChar(haystack, pattern[0], maxCount)
	}

	dir := direction(fromRight)
	if pl == nil {
		pl = newPlan(pattern, dir)
	}
	hs := newDirected(haystack, dir)

	switch strategy {
	case DefaultScan:
		return defaultCount(hs, pl.scanPrework(), maxCount)
	case TwoWay:
		return twoWayCount(hs, pl.twoWayPrework(), maxCount)
	default:
		return adaptiveCount(hs, pl.scanPrework(), pl.tw, maxCount, t.AdaptiveMinRemaining)
	}
}
