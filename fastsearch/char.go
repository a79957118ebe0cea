package fastsearch

import "github.com/mhr3/widesearch/internal/bytealg"

// memchrCutoff is the buffer length above which single-unit search is handed
// to the word and vector kernels.
const memchrCutoff = 31

// findChar returns the first index of c in haystack.
func findChar[T CodeUnit](haystack []T, c T) (int, bool) {
	if len(haystack) > memchrCutoff {
		if i := bytealg.Index(haystack, c); i >= 0 {
			return i, true
		}
		return 0, false
	}
	return scanChar(NewIndexer(haystack), c)
}

// rfindChar returns the last index of c in haystack, counted from the start.
func rfindChar[T CodeUnit](haystack []T, c T) (int, bool) {
	if len(haystack) > memchrCutoff {
		if i := bytealg.LastIndex(haystack, c); i >= 0 {
			return i, true
		}
		return 0, false
	}
	i, ok := scanChar(NewReverseIndexer(haystack), c)
	if !ok {
		return 0, false
	}
	return len(haystack) - 1 - i, true
}

func scanChar[T CodeUnit](ix Indexer[T], c T) (int, bool) {
	for i, n := 0, ix.Len(); i < n; i++ {
		if ix.Get(i) == c {
			return i, true
		}
	}
	return 0, false
}

// countChar counts occurrences of c in haystack up to maxCount.
func countChar[T CodeUnit](haystack []T, c T, maxCount int) int {
	return bytealg.Count(haystack, c, maxCount)
}
