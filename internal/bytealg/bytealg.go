// Package bytealg provides single code unit scanning kernels for 8, 16 and
// 32-bit buffers.
package bytealg

import (
	"bytes"
	"unsafe"
)

// Unit is the set of code unit types the kernels accept.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// Index returns the index of the first c in s, or -1.
func Index[T Unit](s []T, c T) int {
	switch unsafe.Sizeof(c) {
	case 1:
		return bytes.IndexByte(asBytes(s), uint8(c))
	case 2, 4:
		if hasVectorIndexByte {
			return indexPrefilter(s, c)
		}
		return indexSWAR(s, c)
	}
	return indexScalar(s, c)
}

// LastIndex returns the index of the last c in s, or -1.
func LastIndex[T Unit](s []T, c T) int {
	switch unsafe.Sizeof(c) {
	case 1:
		return bytes.LastIndexByte(asBytes(s), uint8(c))
	case 2, 4:
		if hasVectorIndexByte {
			return lastIndexPrefilter(s, c)
		}
		return lastIndexSWAR(s, c)
	}
	return lastIndexScalar(s, c)
}

// Count returns the number of occurrences of c in s, stopping at limit.
// A negative limit counts every occurrence.
func Count[T Unit](s []T, c T, limit int) int {
	if limit == 0 {
		return 0
	}
	if limit < 0 && unsafe.Sizeof(c) == 1 {
		return bytes.Count(asBytes(s), []byte{uint8(c)})
	}
	n := 0
	for {
		i := Index(s, c)
		if i < 0 {
			return n
		}
		n++
		if n == limit {
			return n
		}
		s = s[i+1:]
	}
}

// asBytes views s as its raw bytes in memory order.
func asBytes[T Unit](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}
