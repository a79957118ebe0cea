package fastsearch

// Options configures a Searcher.
type Options struct {
	// Strategy forces a matching algorithm. Auto, the zero value, picks one
	// per haystack. SingleUnit is ignored for patterns longer than one unit.
	Strategy Strategy
	// Tuning overrides the strategy thresholds. The zero value selects
	// DefaultTuning.
	Tuning Tuning
}

// Searcher searches many haystacks for one pattern. The pattern is analyzed
// once, in both directions, at construction. A Searcher is immutable and
// safe for concurrent use.
type Searcher[T CodeUnit] struct {
	pattern  []T
	strategy Strategy
	tuning   Tuning
	forward  plan[T]
	reverse  plan[T]
}

// NewSearcher returns a Searcher for pattern using automatic strategy
// selection. The pattern is retained and must not be modified.
func NewSearcher[T CodeUnit](pattern []T) *Searcher[T] {
	return NewSearcherWithOptions(pattern, Options{})
}

// NewSearcherWithOptions returns a Searcher for pattern configured by opts.
func NewSearcherWithOptions[T CodeUnit](pattern []T, opts Options) *Searcher[T] {
	if opts.Tuning == (Tuning{}) {
		opts.Tuning = DefaultTuning()
	}
	s := &Searcher[T]{
		pattern:  pattern,
		strategy: opts.Strategy,
		tuning:   opts.Tuning,
	}
	if len(pattern) > 0 {
		s.forward = *newPlan(pattern, Forward)
		s.forward.scanPrework()
		s.forward.twoWayPrework()
		s.reverse = *newPlan(pattern, Reverse)
		s.reverse.scanPrework()
		s.reverse.twoWayPrework()
	}
	return s
}

// Pattern returns the pattern the Searcher was built for.
func (s *Searcher[T]) Pattern() []T { return s.pattern }

// Analyze returns the pattern's factorization for the given direction.
func (s *Searcher[T]) Analyze(fromRight bool) Factorization {
	if len(s.pattern) == 0 {
		return Factorization{}
	}
	if fromRight {
		return s.reverse.tw.factorization()
	}
	return s.forward.tw.factorization()
}

// Strategy returns the strategy used for a haystack of haystackLen units.
func (s *Searcher[T]) Strategy(haystackLen int) Strategy {
	return resolve(s.strategy, s.tuning, haystackLen, len(s.pattern))
}

// planFor returns the precomputed plan for a direction. Both plans are fully
// populated, so searching through them never writes to the Searcher.
func (s *Searcher[T]) planFor(fromRight bool) *plan[T] {
	if len(s.pattern) == 0 {
		return nil
	}
	if fromRight {
		return &s.reverse
	}
	return &s.forward
}

// Find returns the offset of the first, or with fromRight the last,
// occurrence of the pattern in haystack.
func (s *Searcher[T]) Find(haystack []T, fromRight bool) (int, bool) {
	return find(haystack, s.pattern, fromRight, s.strategy, s.tuning, s.planFor(fromRight))
}

// Index returns the offset of the first occurrence of the pattern, or -1.
func (s *Searcher[T]) Index(haystack []T) int {
	if i, ok := s.Find(haystack, false); ok {
		return i
	}
	return -1
}

// LastIndex returns the offset of the last occurrence of the pattern, or -1.
func (s *Searcher[T]) LastIndex(haystack []T) int {
	if i, ok := s.Find(haystack, true); ok {
		return i
	}
	return -1
}

// Count returns the number of non-overlapping occurrences of the pattern,
// stopping at maxCount. A negative maxCount counts every occurrence.
func (s *Searcher[T]) Count(haystack []T, maxCount int, fromRight bool) int {
	return count(haystack, s.pattern, maxCount, fromRight, s.strategy, s.tuning, s.planFor(fromRight))
}

// Contains reports whether the pattern occurs in haystack.
func (s *Searcher[T]) Contains(haystack []T) bool {
	_, ok := s.Find(haystack, false)
	return ok
}
