package codeunit

import (
	"encoding/binary"
	"fmt"

	"github.com/segmentio/asm/ascii"

	"github.com/mhr3/widesearch/utf8"
)

const bom = 0xfeff

// Buffer holds text as code units. Exactly one of U8, U16 and U32 is used,
// picked by the width of Encoding.
type Buffer struct {
	Encoding Encoding
	U8       []uint8
	U16      []uint16
	U32      []uint32
	// Skip is the number of raw bytes dropped before unit 0, which is the
	// length of a stripped byte order mark.
	Skip int
}

// Len returns the number of code units in b.
func (b Buffer) Len() int {
	switch b.Encoding.Width() {
	case 2:
		return len(b.U16)
	case 4:
		return len(b.U32)
	}
	return len(b.U8)
}

// ByteOffset converts a unit offset into an offset in the raw input.
func (b Buffer) ByteOffset(unit int) int {
	return b.Skip + unit*b.Encoding.Width()
}

// Decode validates raw text in e and returns its code units. A leading byte
// order mark that matches e is stripped. 8-bit encodings share raw's memory.
func (e Encoding) Decode(raw []byte) (Buffer, error) {
	info := e.info()
	if info.width == 0 {
		return Buffer{}, ErrUnknownEncoding
	}
	buf := Buffer{Encoding: e}
	if len(raw)%info.width != 0 {
		return buf, fmt.Errorf("%w: %d bytes of %s", ErrOddLength, len(raw), info.name)
	}

	switch e {
	case ASCII:
		if !ascii.Valid(raw) {
			return buf, ErrInvalidASCII
		}
	case UTF8:
		if !utf8.Valid(raw) {
			return buf, ErrInvalidUTF8
		}
	}

	buf = e.Units(raw)
	switch info.width {
	case 2:
		if len(buf.U16) > 0 && buf.U16[0] == bom {
			buf.U16 = buf.U16[1:]
			buf.Skip = 2
		}
	case 4:
		if len(buf.U32) > 0 && buf.U32[0] == bom {
			buf.U32 = buf.U32[1:]
			buf.Skip = 4
		}
		if _, _, err := utf8.EncodedLen(buf.U32); err != nil {
			return buf, fmt.Errorf("%w: %w", ErrInvalidUTF32, err)
		}
	}
	return buf, nil
}

// Units returns raw as code units of e. Unlike Decode it neither validates
// raw nor treats a leading U+FEFF as a byte order mark.
func (e Encoding) Units(raw []byte) Buffer {
	info := e.info()
	buf := Buffer{Encoding: e}
	switch info.width {
	case 1:
		buf.U8 = raw
	case 2:
		buf.U16 = Units16(raw, info.order)
	case 4:
		buf.U32 = Units32(raw, info.order)
	}
	return buf
}

// Units16 splits raw into 16-bit units in the given byte order. A trailing
// odd byte is ignored.
func Units16(raw []byte, order binary.ByteOrder) []uint16 {
	out := make([]uint16, len(raw)/2)
	for i := range out {
		out[i] = order.Uint16(raw[2*i:])
	}
	return out
}

// Units32 splits raw into 32-bit units in the given byte order. Trailing
// bytes that do not fill a unit are ignored.
func Units32(raw []byte, order binary.ByteOrder) []uint32 {
	out := make([]uint32, len(raw)/4)
	for i := range out {
		out[i] = order.Uint32(raw[4*i:])
	}
	return out
}
