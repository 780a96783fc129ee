//go:build linux

package controller

import (
	"context"
	"fmt"

	"procinfo/process"
	"procinfo/process_gopsutil"
	"procinfo/process_linux"

	"github.com/Moonlight-Companies/gologger/logger"
)

// OpenSnapshot returns the process source named by backend
func OpenSnapshot(ctx context.Context, backend, root string, log *logger.Logger) (process.Snapshot, error) {
	switch backend {
	case "", BackendProcfs:
		return process_linux.NewSnapshot(root, process_linux.WithLogger(log))
	case BackendGopsutil:
		return process_gopsutil.NewSnapshot(ctx, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
