//go:build amd64 && !purego

package scanner

import (
	"golang.org/x/sys/cpu"
)

// SSE2 is baseline on amd64; the check keeps the selection explicit.
func hasSIMD() bool {
	return cpu.X86.HasSSE2
}
