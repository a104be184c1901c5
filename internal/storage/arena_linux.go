//go:build linux
// +build linux

// File: internal/storage/arena_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux off-heap arenas use anonymous private mmap. Regions that are a
// whole number of 2 MiB hugepages are tried with MAP_HUGETLB first;
// any mmap failure falls back to the Go heap in storage.New.

package storage

import "golang.org/x/sys/unix"

const hugePageSize = 2 << 20

// platformAlloc maps size bytes of anonymous memory. ok is false when the
// mapping failed and the caller should fall back to the heap.
func platformAlloc(size int) ([]byte, bool) {
	flags := unix.MAP_ANONYMOUS | unix.MAP_PRIVATE
	if size%hugePageSize == 0 {
		if data, err := unix.Mmap(-1, 0, size,
			unix.PROT_READ|unix.PROT_WRITE, flags|unix.MAP_HUGETLB); err == nil {
			return data, true
		}
		// No hugepages reserved on this host; retry with regular pages.
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, flags)
	if err != nil {
		return nil, false
	}
	return data, true
}

// platformRelease unmaps a region obtained from platformAlloc.
func platformRelease(data []byte) error {
	return unix.Munmap(data)
}
