package utf8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadByteLen(t *testing.T) {
	tests := []struct {
		b    byte
		want int
	}{
		{'a', 1}, {0x7f, 1}, {0xc2, 2}, {0xdf, 2}, {0xe0, 3}, {0xef, 3}, {0xf0, 4}, {0xf4, 4},
	}
	for _, tt := range tests {
		if got := LeadByteLen(tt.b); got != tt.want {
			t.Errorf("LeadByteLen(%#x) = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 1, RuneLen('a'))
	assert.Equal(t, 2, RuneLen('Ж'))
	assert.Equal(t, 3, RuneLen('☺'))
	assert.Equal(t, 4, RuneLen(0x1f600))
	assert.Equal(t, -1, RuneLen(0xd800))
	assert.Equal(t, -1, RuneLen(0x110000))
}

func TestDecodeAppend(t *testing.T) {
	r, size, err := DecodeOne([]byte("☺x"))
	require.NoError(t, err)
	assert.Equal(t, '☺', r)
	assert.Equal(t, 3, size)

	_, _, err = DecodeOne([]byte{0xe2, 'a'})
	assert.ErrorIs(t, err, ErrInvalid)
	_, _, err = DecodeOne(nil)
	assert.ErrorIs(t, err, ErrInvalid)

	// U+FFFD itself is a valid code point.
	r, size, err = DecodeOne([]byte("�"))
	require.NoError(t, err)
	assert.Equal(t, '�', r)
	assert.Equal(t, 3, size)

	out, err := AppendOne([]byte("a"), 'Ж')
	require.NoError(t, err)
	assert.Equal(t, "aЖ", string(out))
	_, err = AppendOne(nil, 0xdfff)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestRuneCount(t *testing.T) {
	n, err := RuneCount([]byte("日本語ab\x00\x00"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = RuneCount([]byte("\x00a\x00"))
	require.NoError(t, err)
	assert.Equal(t, 2, n, "only trailing NULs are padding")

	n, err = RuneCount(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = RuneCount([]byte("ab\xff"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestEncodedLen(t *testing.T) {
	runes, size, err := EncodedLen([]uint32{'a', 'Ж', 0x1f600, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, runes)
	assert.Equal(t, 7, size)

	_, _, err = EncodedLen([]uint32{'a', 0xd800})
	assert.ErrorIs(t, err, ErrInvalid)
	_, _, err = EncodedLen([]uint32{0x110000})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSpanOffsets(t *testing.T) {
	b := []byte("aЖ☺b") // offsets 0, 1, 3, 6, 7

	tests := []struct {
		start, end int
		wantStart  int
		wantEnd    int
	}{
		{0, 0, 0, 0},
		{0, 4, 0, 7},
		{1, 3, 1, 6},
		{2, 2, 3, 3},
		{3, 1, 6, 1},
	}
	for _, tt := range tests {
		s, e, err := SpanOffsets(b, tt.start, tt.end)
		require.NoError(t, err, "span %d..%d", tt.start, tt.end)
		assert.Equal(t, tt.wantStart, s, "span %d..%d", tt.start, tt.end)
		assert.Equal(t, tt.wantEnd, e, "span %d..%d", tt.start, tt.end)
	}

	_, _, err := SpanOffsets(b, 1, 5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = SpanOffsets(b, -1, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = SpanOffsets(nil, 0, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPrevRuneStart(t *testing.T) {
	b := []byte("aЖ☺b")
	assert.Equal(t, 6, PrevRuneStart(b, 7, 1))
	assert.Equal(t, 3, PrevRuneStart(b, 6, 1))
	assert.Equal(t, 1, PrevRuneStart(b, 7, 3))
	assert.Equal(t, 0, PrevRuneStart(b, 7, 10))
	assert.Equal(t, 3, PrevRuneStart(b, 100, 2))
	assert.Equal(t, 5, PrevRuneStart(b, 5, 0))
}
