package fastsearch

const (
	bloomWidth = 64
	tableMask  = bloomWidth - 1

	// maxShift caps the entries of the Two-Way shift table, which are
	// stored as uint8.
	maxShift = 255
)

// bloomAdd records ch in mask. Only the low six bits of ch are kept, so
// the filter answers "maybe present" for any unit that shares them.
func bloomAdd[T CodeUnit](mask *uint64, ch T) {
	*mask |= 1 << (uint64(ch) & tableMask)
}

// bloomFind reports whether ch may have been added to mask. A false result
// is definitive.
func bloomFind[T CodeUnit](mask uint64, ch T) bool {
	return mask&(1<<(uint64(ch)&tableMask)) != 0
}
