// Package process provides the OS-neutral types used to select and describe a single process
package process

import "errors"

// The package is split by concern:
// - types.go: ProcessID, Record
// - process_state.go: ProcessState codes and their labels
// - selector.go: Selector (by PID or by name)
// - snapshot.go: Snapshot interface and StaticSnapshot
// - process_finder.go: Find, the first-match lookup over a Snapshot
// - pagesize_*.go: PageSize, per OS

var (
	// ErrNotFound is returned by Find when no process in the snapshot matches the selector.
	// It is an expected outcome, not a failure of the snapshot.
	ErrNotFound = errors.New("process not found")

	// ErrInvalidSelector is returned when a selector is built from a negative PID,
	// an empty name or a name longer than MaxNameLen.
	ErrInvalidSelector = errors.New("invalid process selector")

	ErrNilSnapshot = errors.New("nil snapshot")
)
