package utf8

import (
	"errors"
	stdlib "unicode/utf8"
)

var (
	// ErrInvalid is returned for byte sequences or code points that are not
	// valid UTF-8.
	ErrInvalid = errors.New("utf8: invalid encoding")
	// ErrOutOfRange is returned when a code point index lies past the end
	// of the buffer.
	ErrOutOfRange = errors.New("utf8: code point index out of range")
)

// LeadByteLen returns the sequence length announced by the lead byte b. It
// does not check that b is a valid lead byte.
func LeadByteLen(b byte) int {
	switch {
	case b <= 0x7f:
		return 1
	case b <= 0xdf:
		return 2
	case b <= 0xef:
		return 3
	default:
		return 4
	}
}

// RuneLen returns the number of bytes needed to encode r, or -1 for
// surrogates and values above U+10FFFF.
func RuneLen(r rune) int {
	return stdlib.RuneLen(r)
}

// DecodeOne decodes the first code point of b and returns it with its width
// in bytes.
func DecodeOne(b []byte) (rune, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrInvalid
	}
	r, size := stdlib.DecodeRune(b)
	if r == stdlib.RuneError && size <= 1 {
		return r, size, ErrInvalid
	}
	return r, size, nil
}

// AppendOne appends the UTF-8 encoding of r to dst.
func AppendOne(dst []byte, r rune) ([]byte, error) {
	if RuneLen(r) < 0 {
		return dst, ErrInvalid
	}
	return stdlib.AppendRune(dst, r), nil
}

func trimTrailingNUL(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return b
}

// RuneCount returns the number of code points in b. Trailing NUL bytes are
// padding and are not counted.
func RuneCount(b []byte) (int, error) {
	b = trimTrailingNUL(b)
	if !Valid(b) {
		return 0, ErrInvalid
	}
	return stdlib.RuneCount(b), nil
}

// EncodedLen returns the number of code points in units, ignoring trailing
// zero units, and the number of bytes their UTF-8 encoding takes.
func EncodedLen(units []uint32) (runes, size int, err error) {
	for len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	for _, u := range units {
		n := -1
		if u <= stdlib.MaxRune {
			n = RuneLen(rune(u))
		}
		if n < 0 {
			return 0, 0, ErrInvalid
		}
		size += n
	}
	return len(units), size, nil
}

// SpanOffsets returns the byte offsets at which the start-th and end-th code
// points of b begin. An index equal to the number of code points maps to
// the end of the last one. b is assumed to be valid UTF-8.
func SpanOffsets(b []byte, start, end int) (startOff, endOff int, err error) {
	if start < 0 || end < 0 {
		return 0, 0, ErrOutOfRange
	}
	startOff, endOff = -1, -1
	if start == 0 {
		startOff = 0
	}
	if end == 0 {
		endOff = 0
	}

	consumed, runes := 0, 0
	for (startOff < 0 || endOff < 0) && consumed < len(b) {
		consumed += LeadByteLen(b[consumed])
		consumed = min(consumed, len(b))
		runes++
		if runes == start {
			startOff = consumed
		}
		if runes == end {
			endOff = consumed
		}
	}
	if startOff < 0 || endOff < 0 {
		return 0, 0, ErrOutOfRange
	}
	return startOff, endOff, nil
}

// PrevRuneStart returns the byte offset of the code point n positions before
// offset i in b, stopping at the start of the buffer.
func PrevRuneStart(b []byte, i, n int) int {
	i = min(i, len(b))
	for ; n > 0 && i > 0; n-- {
		i--
		for i > 0 && !stdlib.RuneStart(b[i]) {
			i--
		}
	}
	return max(i, 0)
}
