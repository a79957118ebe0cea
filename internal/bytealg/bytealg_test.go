package bytealg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVector(t *testing.T, on bool) {
	t.Helper()
	old := hasVectorIndexByte
	hasVectorIndexByte = on
	t.Cleanup(func() { hasVectorIndexByte = old })
}

func randomUnits[T Unit](rng *rand.Rand, n int, alphabet []T) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return s
}

func checkAgainstScalar[T Unit](t *testing.T, alphabet []T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 2000; iter++ {
		s := randomUnits(rng, rng.Intn(200), alphabet)
		c := alphabet[rng.Intn(len(alphabet))]
		if got, want := Index(s, c), indexScalar(s, c); got != want {
			t.Fatalf("Index(%v, %v) = %d, want %d", s, c, got, want)
		}
		if got, want := LastIndex(s, c), lastIndexScalar(s, c); got != want {
			t.Fatalf("LastIndex(%v, %v) = %d, want %d", s, c, got, want)
		}
		limit := rng.Intn(6) - 1
		if got, want := Count(s, c, limit), countScalar(s, c, limit); got != want {
			t.Fatalf("Count(%v, %v, %d) = %d, want %d", s, c, limit, got, want)
		}
	}
}

func TestKernelsMatchScalar(t *testing.T) {
	for _, vector := range []bool{false, true} {
		name := "swar"
		if vector {
			name = "prefilter"
		}
		t.Run(name, func(t *testing.T) {
			withVector(t, vector)
			t.Run("8", func(t *testing.T) { checkAgainstScalar(t, []uint8{0, 'a', 'b', 0x80, 0xff}) })
			// Units sharing their low byte stress the prefilter's lane check.
			t.Run("16", func(t *testing.T) {
				checkAgainstScalar(t, []uint16{0, 'a', 0x0161, 0x6100, 0x6161, 0xffff, 0x8000})
			})
			t.Run("32", func(t *testing.T) {
				checkAgainstScalar(t, []uint32{0, 'a', 0x0161, 0x61000061, 0x1f600, 0xffffffff, 0x80000000})
			})
		})
	}
}

func TestPrefilterFalseHits(t *testing.T) {
	withVector(t, true)

	// Every unit shares the low byte of the needle, so the prefilter gives
	// up and the word scan finishes the job.
	s := make([]uint16, 500)
	for i := range s {
		s[i] = 0x0141
	}
	s[123] = 0x0041
	s[456] = 0x0041
	assert.Equal(t, 123, Index(s, uint16(0x0041)))
	assert.Equal(t, 456, LastIndex(s, uint16(0x0041)))
	assert.Equal(t, 2, Count(s, uint16(0x0041), -1))
	assert.Equal(t, -1, Index(s, uint16(0x0241)))
	assert.Equal(t, -1, LastIndex(s, uint16(0x0241)))

	w := make([]uint32, 300)
	for i := range w {
		w[i] = 0x00010041
	}
	w[299] = 0x41
	assert.Equal(t, 299, Index(w, uint32(0x41)))
	w[0] = 0x41
	assert.Equal(t, 299, LastIndex(w, uint32(0x41)))
}

func TestCount(t *testing.T) {
	s := []uint8("abracadabra")
	tests := []struct {
		c     uint8
		limit int
		want  int
	}{
		{'a', -1, 5},
		{'a', 0, 0},
		{'a', 3, 3},
		{'a', 100, 5},
		{'z', -1, 0},
		{'r', 1, 1},
	}
	for _, tt := range tests {
		if got := Count(s, tt.c, tt.limit); got != tt.want {
			t.Errorf("Count(%q, %q, %d) = %d, want %d", s, tt.c, tt.limit, got, tt.want)
		}
		if got := countScalar(s, tt.c, tt.limit); got != tt.want {
			t.Errorf("countScalar(%q, %q, %d) = %d, want %d", s, tt.c, tt.limit, got, tt.want)
		}
	}
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, -1, Index([]uint16(nil), 1))
	assert.Equal(t, -1, LastIndex([]uint32{}, 1))
	assert.Equal(t, 0, Count([]uint8(nil), 1, -1))
}

func FuzzIndex16(f *testing.F) {
	f.Add([]byte("h\x00e\x00l\x00l\x00o\x00"), uint16('l'))
	f.Add([]byte{0x41, 0x41, 0x41, 0x00}, uint16(0x41))
	f.Fuzz(func(t *testing.T, raw []byte, c uint16) {
		s := make([]uint16, len(raw)/2)
		for i := range s {
			s[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
		}
		for _, vector := range []bool{false, true} {
			hasVectorIndexByte = vector
			if got, want := Index(s, c), indexScalar(s, c); got != want {
				t.Fatalf("vector=%v Index = %d, want %d", vector, got, want)
			}
			if got, want := LastIndex(s, c), lastIndexScalar(s, c); got != want {
				t.Fatalf("vector=%v LastIndex = %d, want %d", vector, got, want)
			}
		}
	})
}

func BenchmarkIndex16(b *testing.B) {
	s := make([]uint16, 64<<10)
	for i := range s {
		s[i] = uint16('a' + i%26)
	}
	s[len(s)-1] = 0x263a
	for _, vector := range []bool{false, true} {
		name := "swar"
		if vector {
			name = "prefilter"
		}
		b.Run(name, func(b *testing.B) {
			old := hasVectorIndexByte
			hasVectorIndexByte = vector
			defer func() { hasVectorIndexByte = old }()
			b.SetBytes(int64(len(s) * 2))
			for i := 0; i < b.N; i++ {
				Index(s, 0x263a)
			}
		})
	}
}
