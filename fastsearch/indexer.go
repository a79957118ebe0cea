package fastsearch

// CodeUnit is the set of fixed-width code units the search engine works on:
// 1-byte units (ASCII, Latin-1, UTF-8 bytes), 2-byte UTF-16 code units and
// 4-byte UTF-32 code points.
type CodeUnit interface {
	~uint8 | ~uint16 | ~uint32
}

// Direction is the logical traversal order of an Indexer.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Indexer is a bounds-checked cursor over a caller-owned buffer.
//
// A forward indexer starts at the first element and advances toward the end.
// A reverse indexer starts at the last element and advancing moves it toward
// the start, so that logical offset i of a reverse indexer reads buf[len-1-i].
// All arithmetic and comparisons are expressed in logical order, which lets
// the matchers run unchanged in both directions.
//
// Reads past the remaining length return the zero value instead of failing.
// The matchers rely on this to read the unit after a window without an
// explicit bounds check. Use Lookup where a zero unit must be told apart
// from an out-of-range read.
type Indexer[T CodeUnit] struct {
	buf []T
	pos int // physical index of logical offset 0
	dir Direction
}

// NewIndexer returns a forward indexer over buf.
func NewIndexer[T CodeUnit](buf []T) Indexer[T] {
	return Indexer[T]{buf: buf}
}

// NewReverseIndexer returns a reverse indexer over buf, positioned at its
// last element.
func NewReverseIndexer[T CodeUnit](buf []T) Indexer[T] {
	return Indexer[T]{buf: buf, pos: len(buf) - 1, dir: Reverse}
}

func newDirected[T CodeUnit](buf []T, dir Direction) Indexer[T] {
	if dir == Reverse {
		return NewReverseIndexer(buf)
	}
	return NewIndexer(buf)
}

// Direction reports the traversal order.
func (ix Indexer[T]) Direction() Direction { return ix.dir }

// IsReverse reports whether ix traverses its buffer back to front.
func (ix Indexer[T]) IsReverse() bool { return ix.dir == Reverse }

// Len returns the number of units readable from the current position in the
// traversal direction.
func (ix Indexer[T]) Len() int {
	if ix.dir == Reverse {
		return ix.pos + 1
	}
	return len(ix.buf) - ix.pos
}

// back is the number of units Sub can move before reaching the logical start.
func (ix Indexer[T]) back() int {
	if ix.dir == Reverse {
		return len(ix.buf) - 1 - ix.pos
	}
	return ix.pos
}

// Value returns the unit at the current position.
// It panics if the indexer has no remaining units.
func (ix Indexer[T]) Value() T {
	if ix.Len() <= 0 {
		panic("fastsearch: dereference of exhausted indexer")
	}
	return ix.buf[ix.pos]
}

// Get returns the unit at logical offset i, or 0 if i is outside [0, Len()).
func (ix Indexer[T]) Get(i int) T {
	if uint(i) >= uint(ix.Len()) {
		return 0
	}
	if ix.dir == Reverse {
		return ix.buf[ix.pos-i]
	}
	return ix.buf[ix.pos+i]
}

// Lookup returns the unit at logical offset i and whether i was in range.
func (ix Indexer[T]) Lookup(i int) (T, bool) {
	if uint(i) >= uint(ix.Len()) {
		return 0, false
	}
	return ix.Get(i), true
}

// Add returns an indexer moved k units forward in logical order. The move is
// clamped to Len(), so the result never passes the end. A negative k moves
// backward as Sub does.
func (ix Indexer[T]) Add(k int) Indexer[T] {
	ix.Advance(k)
	return ix
}

// Sub returns an indexer moved k units backward in logical order, clamped to
// the logical start of the buffer.
func (ix Indexer[T]) Sub(k int) Indexer[T] {
	ix.Retreat(k)
	return ix
}

// Advance moves ix forward by k units in place, clamped to Len().
func (ix *Indexer[T]) Advance(k int) {
	if k < 0 {
		ix.Retreat(-k)
		return
	}
	if n := ix.Len(); k > n {
		k = n
	}
	if ix.dir == Reverse {
		ix.pos -= k
	} else {
		ix.pos += k
	}
}

// Retreat moves ix backward by k units in place, clamped to the logical
// start of the buffer.
func (ix *Indexer[T]) Retreat(k int) {
	if k < 0 {
		ix.Advance(-k)
		return
	}
	if b := ix.back(); k > b {
		k = b
	}
	if ix.dir == Reverse {
		ix.pos += k
	} else {
		ix.pos -= k
	}
}

// Next advances ix by one unit.
func (ix *Indexer[T]) Next() { ix.Advance(1) }

// Prev moves ix back by one unit.
func (ix *Indexer[T]) Prev() { ix.Retreat(1) }

// Distance returns the signed number of units from other to ix in logical
// order. Both indexers must view the same buffer in the same direction.
func (ix Indexer[T]) Distance(other Indexer[T]) int {
	if ix.dir == Reverse {
		return other.pos - ix.pos
	}
	return ix.pos - other.pos
}

// Less reports whether ix is logically before other.
func (ix Indexer[T]) Less(other Indexer[T]) bool { return ix.Distance(other) < 0 }

// LessEq reports whether ix is logically before or at other.
func (ix Indexer[T]) LessEq(other Indexer[T]) bool { return ix.Distance(other) <= 0 }

// Greater reports whether ix is logically after other.
func (ix Indexer[T]) Greater(other Indexer[T]) bool { return ix.Distance(other) > 0 }

// GreaterEq reports whether ix is logically after or at other.
func (ix Indexer[T]) GreaterEq(other Indexer[T]) bool { return ix.Distance(other) >= 0 }

// Equal reports whether ix and other are at the same position.
func (ix Indexer[T]) Equal(other Indexer[T]) bool { return ix.pos == other.pos }

// Cmp lexicographically compares the next n units of ix and other and returns
// -1, 0 or +1. It panics if either side has fewer than n units left.
func (ix Indexer[T]) Cmp(other Indexer[T], n int) int {
	if ix.Len() < n || other.Len() < n {
		panic("fastsearch: compare length exceeds indexer")
	}
	for i := 0; i < n; i++ {
		a, b := ix.Get(i), other.Get(i)
		if a != b {
			if a > b {
				return 1
			}
			return -1
		}
	}
	return 0
}
