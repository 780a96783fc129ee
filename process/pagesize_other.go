//go:build !unix

package process

import "os"

// PageSize returns the memory page size of the running system in bytes
func PageSize() int {
	return os.Getpagesize()
}
