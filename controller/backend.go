package controller

import "errors"

const (
	BackendProcfs   = "procfs"
	BackendGopsutil = "gopsutil"
)

var ErrUnknownBackend = errors.New("unknown process backend")
