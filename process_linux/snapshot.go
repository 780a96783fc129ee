//go:build linux

package process_linux

import (
	"fmt"

	"procinfo/process"

	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// Snapshot implements process.Snapshot over a mounted proc filesystem.
// Every call to Each walks the live process table again.
type Snapshot struct {
	fs       procfs.FS
	root     string
	pageSize uint64
	log      *logger.Logger
}

// Option configures a Snapshot
type Option func(*Snapshot)

// WithLogger enables debug logging of skipped processes
func WithLogger(l *logger.Logger) Option {
	return func(s *Snapshot) {
		s.log = l
	}
}

// WithPageSize overrides the page size used to turn the virtual size into pages
func WithPageSize(size uint64) Option {
	return func(s *Snapshot) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// NewSnapshot opens the proc filesystem mounted at root ("/proc" when empty)
func NewSnapshot(root string, opts ...Option) (*Snapshot, error) {
	if root == "" {
		root = procfs.DefaultMountPoint
	}

	fs, err := procfs.NewFS(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open proc filesystem at %s: %w", root, err)
	}

	s := &Snapshot{
		fs:       fs,
		root:     root,
		pageSize: uint64(unix.Getpagesize()),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Root returns the mount point the snapshot reads from
func (s *Snapshot) Root() string {
	return s.root
}

// Each walks every PID directory under the mount point in directory order
func (s *Snapshot) Each(fn func(process.Record) bool) error {
	procs, err := s.fs.AllProcs()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.root, err)
	}

	skipped := 0
	defer func() {
		if skipped > 0 && s.log != nil {
			s.log.Debugln("Skipped", skipped, "processes that could not be read")
		}
	}()

	for _, p := range procs {
		rec, err := s.record(p)
		if err != nil {
			// Process may have terminated while we were reading
			skipped++
			continue
		}

		if !fn(rec) {
			return nil
		}
	}

	return nil
}

func (s *Snapshot) record(p procfs.Proc) (process.Record, error) {
	stat, err := p.Stat()
	if err != nil {
		return process.Record{}, fmt.Errorf("failed to read stat of %d: %w", p.PID, err)
	}

	status, err := p.NewStatus()
	if err != nil {
		return process.Record{}, fmt.Errorf("failed to read status of %d: %w", p.PID, err)
	}

	vsize := uint64(stat.VirtualMemory())

	return process.Record{
		PID:       process.ProcessID(stat.PID),
		Name:      stat.Comm,
		PPID:      process.ProcessID(stat.PPID),
		HasParent: stat.PPID > 0,
		UID:       uint32(status.UIDs[0]), // Real UID
		State:     process.ParseStateLetter(stat.State),
		VMPages:   vsize / s.pageSize,
		HasMemory: vsize > 0,
	}, nil
}
