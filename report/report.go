// Package report turns a process.Record into the fixed-layout text handed to readers
package report

import (
	"errors"

	"procinfo/process"
)

// NotRunningMarker replaces the memory figure of processes that are not running
const NotRunningMarker = "State is not running."

// DefaultLimit bounds the size of a serialized report to one memory page
var DefaultLimit = process.PageSize()

var (
	// ErrReportTooLarge is returned when a report does not fit within the buffer limit.
	ErrReportTooLarge = errors.New("report exceeds buffer limit")
)

// Report is the formatted description of one process, or of a failed lookup.
// It is immutable once built.
type Report struct {
	Name        string
	PID         process.ProcessID
	PPID        process.ProcessID
	UID         uint32
	Path        string
	State       string
	MemoryKB    uint64
	MemoryShown bool // MemoryKB is only printed for running processes

	// NotFound is set on reports produced by FormatNotFound
	NotFound bool
	Selector process.Selector

	text []byte
}

// Bytes returns the serialized report. The slice must not be modified.
func (r *Report) Bytes() []byte {
	return r.text
}

// Len returns the size of the serialized report
func (r *Report) Len() int {
	return len(r.text)
}

func (r *Report) String() string {
	return string(r.text)
}
