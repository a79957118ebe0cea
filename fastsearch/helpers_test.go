package fastsearch

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	articleOnce sync.Once
	articleText string
	articleErr  error
)

func article(t testing.TB) string {
	t.Helper()
	articleOnce.Do(func() {
		var b []byte
		b, articleErr = os.ReadFile("testdata/article.txt")
		articleText = string(b)
	})
	require.NoError(t, articleErr)
	return articleText
}

// widen copies the bytes of s into units of type T.
func widen[T CodeUnit](s string) []T {
	out := make([]T, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = T(s[i])
	}
	return out
}

func matchAt[T CodeUnit](h, p []T, i int) bool {
	for j := range p {
		if h[i+j] != p[j] {
			return false
		}
	}
	return true
}

func naiveFind[T CodeUnit](h, p []T, fromRight bool) (int, bool) {
	n := len(p)
	if n == 0 || len(h) < n {
		return 0, false
	}
	if fromRight {
		for i := len(h) - n; i >= 0; i-- {
			if matchAt(h, p, i) {
				return i, true
			}
		}
		return 0, false
	}
	for i := 0; i+n <= len(h); i++ {
		if matchAt(h, p, i) {
			return i, true
		}
	}
	return 0, false
}

func naiveCount[T CodeUnit](h, p []T, maxCount int, fromRight bool) int {
	n := len(p)
	if n == 0 || len(h) < n || maxCount == 0 {
		return 0
	}
	c := 0
	if fromRight {
		for i := len(h) - n; i >= 0; {
			if matchAt(h, p, i) {
				c++
				if c == maxCount {
					return c
				}
				i -= n
			} else {
				i--
			}
		}
		return c
	}
	for i := 0; i+n <= len(h); {
		if matchAt(h, p, i) {
			c++
			if c == maxCount {
				return c
			}
			i += n
		} else {
			i++
		}
	}
	return c
}

var allStrategies = []Strategy{Auto, SingleUnit, DefaultScan, TwoWay, Adaptive}
