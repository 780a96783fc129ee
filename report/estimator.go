package report

import "procinfo/process"

// MemoryEstimator converts a page count into kilobytes
type MemoryEstimator struct {
	PageSizeKB uint64
}

// NewMemoryEstimator uses the page size of the running system
func NewMemoryEstimator() MemoryEstimator {
	return MemoryEstimator{PageSizeKB: uint64(process.PageSize()) >> 10}
}

// Estimate returns the virtual memory footprint of rec in kilobytes,
// 0 when the process has no memory context or no pages.
// The figure is only meaningful for running processes.
func (e MemoryEstimator) Estimate(rec process.Record) uint64 {
	if !rec.HasMemory || rec.VMPages == 0 {
		return 0
	}
	return rec.VMPages * e.PageSizeKB
}
