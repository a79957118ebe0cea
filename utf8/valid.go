// Package utf8 validates and navigates UTF-8 encoded buffers.
package utf8

import (
	"unsafe"

	"github.com/segmentio/asm/ascii"
	asmutf8 "github.com/segmentio/asm/utf8"
)

// Valid reports whether b is entirely valid UTF-8.
func Valid(b []byte) bool {
	// speed up the common case
	if ascii.Valid(b) {
		return true
	}
	return asmutf8.Valid(b)
}

// ValidString reports whether s is entirely valid UTF-8.
func ValidString(s string) bool {
	return Valid(unsafe.Slice(unsafe.StringData(s), len(s)))
}
