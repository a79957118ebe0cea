//go:build noasm

package bytealg

var hasVectorIndexByte = false
