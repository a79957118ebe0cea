package fastsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var digits = []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

func TestIndexerStart(t *testing.T) {
	fwd := NewIndexer(digits)
	rev := NewReverseIndexer(digits)

	assert.Equal(t, uint8(0), fwd.Value())
	assert.Equal(t, uint8(9), rev.Value())
	assert.Equal(t, 10, fwd.Len())
	assert.Equal(t, 10, rev.Len())
	assert.False(t, fwd.IsReverse())
	assert.True(t, rev.IsReverse())
	assert.Equal(t, "reverse", rev.Direction().String())
}

func TestIndexerArithmetic(t *testing.T) {
	for _, start := range []Indexer[uint8]{NewIndexer(digits), NewReverseIndexer(digits)} {
		name := start.Direction().String()

		moved := start.Add(4)
		assert.Equal(t, 6, moved.Len(), name)
		assert.Equal(t, 4, moved.Distance(start), name)
		assert.Equal(t, -4, start.Distance(moved), name)
		assert.True(t, moved.Sub(4).Equal(start), name)

		end := start.Add(100)
		assert.Equal(t, 0, end.Len(), name)
		assert.Equal(t, 10, end.Distance(start), name)

		assert.True(t, start.Sub(3).Equal(start), "%s: Sub clamps at the start", name)
		assert.True(t, start.Add(-2).Equal(start), name)

		ix := start
		ix.Next()
		ix.Next()
		ix.Prev()
		assert.True(t, ix.Equal(start.Add(1)), name)
	}

	fwd := NewIndexer(digits).Add(4)
	rev := NewReverseIndexer(digits).Add(4)
	assert.Equal(t, uint8(4), fwd.Value())
	assert.Equal(t, uint8(5), rev.Value())
}

func TestIndexerAdvanceRetreat(t *testing.T) {
	fwd := NewIndexer(digits)
	rev := NewReverseIndexer(digits)

	fwd.Advance(3)
	rev.Advance(3)
	assert.Equal(t, uint8(3), fwd.Value())
	assert.Equal(t, uint8(6), rev.Value())

	fwd.Advance(100)
	rev.Advance(100)
	assert.Equal(t, 0, fwd.Len())
	assert.Equal(t, 0, rev.Len())

	fwd.Retreat(1)
	rev.Retreat(1)
	assert.Equal(t, uint8(9), fwd.Value())
	assert.Equal(t, uint8(0), rev.Value())

	fwd.Retreat(100)
	rev.Retreat(100)
	assert.Equal(t, uint8(0), fwd.Value())
	assert.Equal(t, uint8(9), rev.Value())
}

func TestIndexerGet(t *testing.T) {
	fwd := NewIndexer(digits)
	rev := NewReverseIndexer(digits)

	for i := 0; i < 10; i++ {
		assert.Equal(t, uint8(i), fwd.Get(i))
		assert.Equal(t, uint8(9-i), rev.Get(i))
	}
	assert.Equal(t, uint8(0), fwd.Add(2).Get(8), "sentinel past the end")
	assert.Equal(t, uint8(0), fwd.Get(-1))
	assert.Equal(t, uint8(0), rev.Get(10))

	v, ok := fwd.Add(2).Lookup(7)
	assert.True(t, ok)
	assert.Equal(t, uint8(9), v)
	_, ok = fwd.Add(2).Lookup(8)
	assert.False(t, ok)
	_, ok = rev.Lookup(-1)
	assert.False(t, ok)
}

func TestIndexerOrdering(t *testing.T) {
	for _, start := range []Indexer[uint8]{NewIndexer(digits), NewReverseIndexer(digits)} {
		name := start.Direction().String()
		a, b := start.Add(2), start.Add(5)

		assert.True(t, a.Less(b), name)
		assert.True(t, a.LessEq(b), name)
		assert.True(t, a.LessEq(a), name)
		assert.False(t, a.Greater(b), name)
		assert.True(t, b.Greater(a), name)
		assert.True(t, b.GreaterEq(b), name)
		assert.False(t, a.Equal(b), name)
	}
}

func TestIndexerCmp(t *testing.T) {
	fwd := NewIndexer(digits)
	rev := NewReverseIndexer(digits)

	assert.Equal(t, 1, fwd.Add(3).Cmp(fwd, 7))
	assert.Equal(t, -1, fwd.Add(3).Cmp(fwd.Add(6), 4))
	assert.Equal(t, -1, rev.Add(3).Cmp(rev, 7))
	assert.Equal(t, 1, rev.Add(3).Cmp(rev.Add(6), 4))
	assert.Equal(t, 0, fwd.Cmp(NewIndexer([]uint8{0, 1, 2}), 3))
	assert.Equal(t, 0, fwd.Cmp(rev, 0))

	assert.Panics(t, func() { fwd.Add(6).Cmp(fwd, 5) })
	assert.Panics(t, func() { rev.Cmp(rev.Add(8), 3) })
}

func TestIndexerEmpty(t *testing.T) {
	var zero Indexer[uint16]
	assert.Equal(t, 0, zero.Len())
	assert.False(t, zero.IsReverse())
	assert.Panics(t, func() { zero.Value() })

	rev := NewReverseIndexer[uint32](nil)
	assert.Equal(t, 0, rev.Len())
	assert.Equal(t, uint32(0), rev.Get(0))
	assert.Equal(t, 0, rev.Add(1).Len())
	assert.Panics(t, func() { rev.Value() })
}

func TestIndexerWideUnits(t *testing.T) {
	buf := []uint32{0x1f600, 'a', 0x10ffff}
	rev := NewReverseIndexer(buf)
	assert.Equal(t, uint32(0x10ffff), rev.Value())
	assert.Equal(t, uint32(0x1f600), rev.Get(2))
	assert.Equal(t, -1, NewIndexer(buf).Add(1).Cmp(NewIndexer(buf), 1))
}
