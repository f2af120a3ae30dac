package scanner

import (
	"encoding/binary"
	"math/bits"
)

const (
	// ChunkSize is the number of bytes compared per lane-parallel step.
	ChunkSize = 16

	lanes    = 0x0101010101010101
	low7     = 0x7f7f7f7f7f7f7f7f
	moveMask = 0x0002040810204081
)

// splats holds each structural byte broadcast to all eight lanes of a word.
var splats = func() (s [len(structuralBytes)]uint64) {
	for i, c := range structuralBytes {
		s[i] = uint64(c) * lanes
	}
	return s
}()

// ScanSIMD processes data in 16-byte chunks, two 64-bit words of eight byte
// lanes each. For every structural byte it builds a lane equality mask, ORs
// the masks together and collapses them into one bit per byte; set bits are
// appended in ascending order. The tail shorter than a chunk is scanned
// byte by byte. Output is identical to ScanScalar.
func ScanSIMD(data []byte) []int {
	offsets := make([]int, 0, len(data)/8)

	i := 0
	for ; i+ChunkSize <= len(data); i += ChunkSize {
		lo := binary.LittleEndian.Uint64(data[i:])
		hi := binary.LittleEndian.Uint64(data[i+8:])
		mask := uint16(structuralMask(lo)) | uint16(structuralMask(hi))<<8
		for mask != 0 {
			offsets = append(offsets, i+bits.TrailingZeros16(mask))
			mask &= mask - 1
		}
	}

	return scanScalarFrom(data, i, offsets)
}

// structuralMask returns bit k set when byte lane k of w is structural.
func structuralMask(w uint64) uint8 {
	var m uint64
	for _, s := range splats {
		m |= laneEqual(w, s)
	}
	// m only has the top bit of each lane set. Every product term lands on
	// a distinct bit, so there are no carries and lane k ends up at bit 56+k.
	return uint8((m * moveMask) >> 56)
}

// laneEqual sets the top bit of each byte lane where w equals splat. The
// per-lane add cannot exceed 0xfe, so lanes never carry into each other.
func laneEqual(w, splat uint64) uint64 {
	x := w ^ splat
	return ^(((x & low7) + low7) | x | low7)
}
