//go:build !linux

package controller

import (
	"context"
	"fmt"

	"procinfo/process"
	"procinfo/process_gopsutil"

	"github.com/Moonlight-Companies/gologger/logger"
)

// OpenSnapshot returns the process source named by backend.
// Without a proc filesystem every backend falls back to gopsutil.
func OpenSnapshot(ctx context.Context, backend, root string, log *logger.Logger) (process.Snapshot, error) {
	switch backend {
	case "", BackendProcfs, BackendGopsutil:
		return process_gopsutil.NewSnapshot(ctx, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
