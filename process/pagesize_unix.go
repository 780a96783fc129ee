//go:build unix

package process

import "golang.org/x/sys/unix"

// PageSize returns the memory page size of the running system in bytes
func PageSize() int {
	return unix.Getpagesize()
}
