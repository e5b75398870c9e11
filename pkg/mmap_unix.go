//go:build unix

package pkg

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MMapFile maps name read-only into memory. The mapping outlives the file
// handle and must be released with Unmap.
func MMapFile(name string) ([]byte, int64, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, 0, fmt.Errorf("open '%s': %w", name, err)
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("stat '%s': %w", name, err)
	}

	size := fi.Size()
	if size == 0 {
		return []byte{}, 0, nil
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, 0, fmt.Errorf("mmap '%s': %w", name, err)
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return data, size, nil
}

func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munmap(data)
}
