package bytealg

import (
	"bytes"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// maxFalseHits bounds how many low-byte candidates that fail the full unit
// compare the prefilter tolerates before the word scan takes over.
const maxFalseHits = 32

// indexPrefilter finds c in a 16 or 32-bit buffer by searching the raw bytes
// for its least significant byte and confirming each aligned candidate.
func indexPrefilter[T Unit](s []T, c T) int {
	width := int(unsafe.Sizeof(c))
	b := asBytes(s)
	lo := uint8(c)
	lane := laneLowByte(width)

	misses := 0
	for from := 0; from < len(b); {
		k := bytes.IndexByte(b[from:], lo)
		if k < 0 {
			return -1
		}
		pos := from + k
		if pos%width == lane {
			if i := pos / width; s[i] == c {
				return i
			}
		}
		from = pos + 1
		if misses++; misses > maxFalseHits {
			start := pos / width
			if r := indexSWAR(s[start:], c); r >= 0 {
				return start + r
			}
			return -1
		}
	}
	return -1
}

func lastIndexPrefilter[T Unit](s []T, c T) int {
	width := int(unsafe.Sizeof(c))
	b := asBytes(s)
	lo := uint8(c)
	lane := laneLowByte(width)

	misses := 0
	for to := len(b); to > 0; {
		pos := bytes.LastIndexByte(b[:to], lo)
		if pos < 0 {
			return -1
		}
		if pos%width == lane {
			if i := pos / width; s[i] == c {
				return i
			}
		}
		to = pos
		if misses++; misses > maxFalseHits {
			return lastIndexSWAR(s[:pos/width+1], c)
		}
	}
	return -1
}

// laneLowByte is the offset of a unit's least significant byte within its lane.
func laneLowByte(width int) int {
	if cpu.IsBigEndian {
		return width - 1
	}
	return 0
}
