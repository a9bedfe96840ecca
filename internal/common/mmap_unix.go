//go:build !windows
// +build !windows

package common

import (
	"os"

	"golang.org/x/sys/unix"
)

// MmapFile maps a file read-only into memory. Empty files return a nil
// slice because a zero-length mapping is invalid on most systems.
func MmapFile(f *os.File) ([]byte, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() == 0 {
		return nil, nil
	}
	return unix.Mmap(int(f.Fd()), 0, int(stat.Size()), unix.PROT_READ, unix.MAP_SHARED)
}

// MunmapFile releases a mapping created by MmapFile.
func MunmapFile(data []byte) error {
	if data == nil {
		return nil
	}
	return unix.Munmap(data)
}
