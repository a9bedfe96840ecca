//go:build windows
// +build windows

package common

import (
	"io"
	"os"
)

// MmapFile falls back to reading the whole file on Windows. The tools load
// files into memory anyway, so the only cost is the copy.
func MmapFile(f *os.File) ([]byte, error) {
	return io.ReadAll(f)
}

// MunmapFile is a no-op for the ReadAll fallback.
func MunmapFile(data []byte) error {
	return nil
}
