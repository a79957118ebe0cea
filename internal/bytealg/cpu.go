//go:build !noasm

package bytealg

import "golang.org/x/sys/cpu"

// hasVectorIndexByte reports whether the runtime's IndexByte runs on vector
// units, which makes the byte prefilter faster than word-at-a-time scans.
var hasVectorIndexByte = cpu.X86.HasAVX2 || cpu.X86.HasSSE42 || cpu.ARM64.HasASIMD
