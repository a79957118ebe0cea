package fastsearch

// prework is the per-pattern, per-direction state of the Two-Way matcher.
// It is built once by preprocess and never modified afterwards.
type prework[T CodeUnit] struct {
	pattern  Indexer[T]
	n        int
	cut      int
	period   int
	periodic bool
	gap      int
	table    [bloomWidth]uint8
	// compares, when set, is incremented for every unit comparison made
	// by the matcher. Only tests attach it.
	compares *int
}

// Factorization describes the critical factorization of a pattern as used by
// the Two-Way matcher.
type Factorization struct {
	// Cut splits the pattern into a left part [0, Cut) and a right part.
	Cut int `json:"cut"`
	// Period is the period of the right part for periodic patterns and a
	// lower bound on the global period otherwise.
	Period int `json:"period"`
	// Periodic reports whether the left part repeats at offset Period.
	Periodic bool `json:"periodic"`
	// Gap is the distance from the last unit to the nearest earlier unit
	// sharing its low six bits. It is 0 for periodic patterns.
	Gap int `json:"gap"`
}

// Analyze returns the forward critical factorization of pattern.
// An empty pattern yields the zero Factorization.
func Analyze[T CodeUnit](pattern []T) Factorization {
	if len(pattern) == 0 {
		return Factorization{}
	}
	w := preprocess(NewIndexer(pattern))
	return w.factorization()
}

// AnalyzeReverse returns the critical factorization used for right-to-left
// search, computed over the reversed pattern.
func AnalyzeReverse[T CodeUnit](pattern []T) Factorization {
	if len(pattern) == 0 {
		return Factorization{}
	}
	w := preprocess(NewReverseIndexer(pattern))
	return w.factorization()
}

func (w *prework[T]) factorization() Factorization {
	return Factorization{Cut: w.cut, Period: w.period, Periodic: w.periodic, Gap: w.gap}
}

// lexSearch returns the start of the maximal suffix of the first n units of
// pattern and the period of that suffix. With invert set the alphabet order
// is reversed, which yields the minimal suffix instead.
func lexSearch[T CodeUnit](pattern Indexer[T], n int, invert bool) (maxSuffix, period int) {
	candidate, k := 1, 0
	period = 1
	for candidate+k < n {
		a, b := pattern.Get(candidate+k), pattern.Get(maxSuffix+k)
		var smaller bool
		if invert {
			smaller = b < a
		} else {
			smaller = a < b
		}
		switch {
		case smaller:
			// Suffix is smaller; the period is the whole prefix so far.
			candidate += k + 1
			k = 0
			period = candidate - maxSuffix
		case a == b:
			if k+1 != period {
				k++
			} else {
				candidate += period
				k = 0
			}
		default:
			// Suffix is larger; restart from the candidate.
			maxSuffix = candidate
			candidate++
			k = 0
			period = 1
		}
	}
	return maxSuffix, period
}

// factorize computes a critical factorization of the first n units of
// pattern. The later of the two cuts wins; a tie keeps the inverted result.
func factorize[T CodeUnit](pattern Indexer[T], n int) (cut, period int) {
	cut1, period1 := lexSearch(pattern, n, false)
	cut2, period2 := lexSearch(pattern, n, true)
	if cut1 > cut2 {
		return cut1, period1
	}
	return cut2, period2
}

// preprocess builds the Two-Way state for pattern, which must not be empty.
func preprocess[T CodeUnit](pattern Indexer[T]) *prework[T] {
	n := pattern.Len()
	w := &prework[T]{pattern: pattern, n: n}
	w.cut, w.period = factorize(pattern, n)
	if w.period+w.cut > n {
		panic("fastsearch: inconsistent critical factorization")
	}

	w.periodic = pattern.Cmp(pattern.Add(w.period), w.cut) == 0
	if w.periodic {
		if w.cut > n/2 || w.cut >= w.period {
			panic("fastsearch: inconsistent critical factorization")
		}
	} else {
		w.period = max(w.cut, n-w.cut) + 1

		w.gap = n
		last := uint64(pattern.Get(n-1)) & tableMask
		for i := n - 1; i > 0; i-- {
			if uint64(pattern.Get(i-1))&tableMask == last {
				w.gap = n - i
				break
			}
		}
	}

	window := min(n, maxShift)
	for i := range w.table {
		w.table[i] = uint8(window)
	}
	for i := n - window; i < n; i++ {
		w.table[uint64(pattern.Get(i))&tableMask] = uint8(n - 1 - i)
	}
	return w
}
