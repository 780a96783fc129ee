// Package process_gopsutil implements process.Snapshot on top of gopsutil,
// for platforms without a proc filesystem.
package process_gopsutil

import (
	"context"
	"fmt"

	"procinfo/process"

	"github.com/Moonlight-Companies/gologger/logger"
	ps "github.com/shirou/gopsutil/v3/process"
)

// Snapshot implements process.Snapshot with gopsutil.
type Snapshot struct {
	ctx      context.Context
	pageSize uint64
	log      *logger.Logger
}

// NewSnapshot creates a gopsutil backed snapshot. log may be nil.
func NewSnapshot(ctx context.Context, log *logger.Logger) *Snapshot {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Snapshot{
		ctx:      ctx,
		pageSize: uint64(process.PageSize()),
		log:      log,
	}
}

func (s *Snapshot) Each(fn func(process.Record) bool) error {
	procs, err := ps.ProcessesWithContext(s.ctx)
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	skipped := 0
	for _, p := range procs {
		rec, err := s.record(p)
		if err != nil {
			skipped++
			continue
		}

		if !fn(rec) {
			break
		}
	}

	if skipped > 0 && s.log != nil {
		s.log.Debugln("Skipped", skipped, "of", len(procs), "processes")
	}

	return nil
}

func (s *Snapshot) record(p *ps.Process) (process.Record, error) {
	name, err := p.NameWithContext(s.ctx)
	if err != nil {
		return process.Record{}, fmt.Errorf("failed to read name of %d: %w", p.Pid, err)
	}

	rec := process.Record{
		PID:   process.ProcessID(p.Pid),
		Name:  commName(name),
		State: process.StateUnknown,
	}

	if ppid, err := p.PpidWithContext(s.ctx); err == nil && ppid > 0 {
		rec.PPID = process.ProcessID(ppid)
		rec.HasParent = true
	}

	if uids, err := p.UidsWithContext(s.ctx); err == nil && len(uids) > 0 {
		rec.UID = uint32(uids[0])
	}

	if status, err := p.StatusWithContext(s.ctx); err == nil && len(status) > 0 {
		rec.State = stateFromStatus(status[0])
	}

	if mem, err := p.MemoryInfoWithContext(s.ctx); err == nil && mem != nil && mem.VMS > 0 {
		rec.VMPages = mem.VMS / s.pageSize
		rec.HasMemory = true
	}

	return rec, nil
}

// commName cuts name to the length the kernel keeps for a task name.
// gopsutil substitutes the command line basename for names it finds truncated,
// which a name selector could never match.
func commName(name string) string {
	if len(name) > process.MaxNameLen {
		return name[:process.MaxNameLen]
	}
	return name
}

// stateFromStatus maps the gopsutil status names onto state codes.
// gopsutil folds both T (stopped) and t (tracing stop) into Stop, so this
// backend reports traced processes as Stopped; the procfs backend keeps them apart.
func stateFromStatus(status string) process.ProcessState {
	switch status {
	case ps.Running:
		return process.StateRunning
	case ps.Sleep:
		return process.StateInterruptibleSleep
	case ps.Blocked:
		return process.StateUninterruptibleSleep
	case ps.Stop:
		return process.StateStopped
	case ps.Zombie:
		return process.StateZombie
	case ps.Wait:
		return process.StateWaking
	default:
		return process.StateUnknown
	}
}
