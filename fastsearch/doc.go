// Package fastsearch implements substring search over fixed-width code
// units: bytes, UTF-16 code units and UTF-32 code points.
//
// Four matchers share one dispatcher. Single unit patterns are handed to
// word and vector scanning kernels. Short patterns and haystacks use a scan
// anchored on the pattern's last unit and gated by a 64-bit bloom filter.
// Long haystacks use the Crochemore-Perrin Two-Way algorithm, which runs in
// linear time and constant space. Between the two, an adaptive scan starts
// out cheap and switches to Two-Way once partial matches show the pattern
// is expensive to scan for.
//
// Every matcher runs forward or in reverse over a checked Indexer, so right
// to left search reuses the same code. Offsets returned by the package are
// always counted from the start of the haystack.
package fastsearch
