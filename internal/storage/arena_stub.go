//go:build !linux
// +build !linux

// File: internal/storage/arena_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub for platforms without an off-heap path. storage.New falls back
// to the Go heap whenever platformAlloc reports failure.

package storage

// platformAlloc always reports failure on unsupported platforms.
func platformAlloc(int) ([]byte, bool) {
	return nil, false
}

// platformRelease is never reached on unsupported platforms.
func platformRelease([]byte) error {
	return nil
}
