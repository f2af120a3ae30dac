//go:build arm64 && !purego

package scanner

import (
	"golang.org/x/sys/cpu"
)

func hasSIMD() bool {
	return cpu.ARM64.HasASIMD
}
