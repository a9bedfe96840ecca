// Package common holds file-access plumbing shared by the tools: memory
// mapping and compressed-input detection.
package common

import "bytes"

// lz4FrameMagic is the little-endian magic number opening an lz4 frame.
var lz4FrameMagic = []byte{0x04, 0x22, 0x4d, 0x18}

// IsLZ4 reports whether data starts with an lz4 frame header.
func IsLZ4(data []byte) bool {
	return len(data) >= len(lz4FrameMagic) && bytes.Equal(data[:len(lz4FrameMagic)], lz4FrameMagic)
}
