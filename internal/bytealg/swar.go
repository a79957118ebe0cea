package bytealg

import "unsafe"

// hasZeroLane reports whether any lane of x is zero, for lanes described by
// the lo (lowest bit of every lane) and hi (highest bit) masks.
func hasZeroLane(x, lo, hi uint64) bool {
	return (x-lo)&^x&hi != 0
}

func indexSWAR[T Unit](s []T, c T) int {
	if unsafe.Sizeof(c) == 2 {
		return indexSWAR16(s, c)
	}
	return indexSWAR32(s, c)
}

func lastIndexSWAR[T Unit](s []T, c T) int {
	if unsafe.Sizeof(c) == 2 {
		return lastIndexSWAR16(s, c)
	}
	return lastIndexSWAR32(s, c)
}

const (
	lo16 = 0x0001000100010001
	hi16 = 0x8000800080008000
	lo32 = 0x0000000100000001
	hi32 = 0x8000000080000000
)

func word16[T Unit](s []T) uint64 {
	_ = s[3]
	return uint64(s[0]) | uint64(s[1])<<16 | uint64(s[2])<<32 | uint64(s[3])<<48
}

func word32[T Unit](s []T) uint64 {
	_ = s[1]
	return uint64(s[0]) | uint64(s[1])<<32
}

func indexSWAR16[T Unit](s []T, c T) int {
	pattern := uint64(c) * lo16
	i := 0
	for ; i+4 <= len(s); i += 4 {
		if hasZeroLane(word16(s[i:])^pattern, lo16, hi16) {
			break
		}
	}
	if r := indexScalar(s[i:], c); r >= 0 {
		return i + r
	}
	return -1
}

func indexSWAR32[T Unit](s []T, c T) int {
	pattern := uint64(c) * lo32
	i := 0
	for ; i+2 <= len(s); i += 2 {
		if hasZeroLane(word32(s[i:])^pattern, lo32, hi32) {
			break
		}
	}
	if r := indexScalar(s[i:], c); r >= 0 {
		return i + r
	}
	return -1
}

func lastIndexSWAR16[T Unit](s []T, c T) int {
	pattern := uint64(c) * lo16
	end := len(s)
	for ; end >= 4; end -= 4 {
		if hasZeroLane(word16(s[end-4:])^pattern, lo16, hi16) {
			break
		}
	}
	return lastIndexScalar(s[:end], c)
}

func lastIndexSWAR32[T Unit](s []T, c T) int {
	pattern := uint64(c) * lo32
	end := len(s)
	for ; end >= 2; end -= 2 {
		if hasZeroLane(word32(s[end-2:])^pattern, lo32, hi32) {
			break
		}
	}
	return lastIndexScalar(s[:end], c)
}
