// Package session delivers a single process report to one reader.
//
// A Session starts Idle. The first Read scans the process table once,
// freezes the resulting report and starts handing it out; later reads
// continue from the stored offset until the report is exhausted, after
// which every read returns io.EOF.
package session

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"procinfo/process"
	"procinfo/report"

	"github.com/Moonlight-Companies/gologger/logger"
)

var (
	// ErrLookupNotFound accompanies the error text on the first read when no process matched.
	ErrLookupNotFound = process.ErrNotFound

	// ErrTransferFault is returned when the report cannot be delivered to the destination.
	ErrTransferFault = errors.New("failed to transfer report")

	// ErrClosed is returned by reads on a deactivated session.
	ErrClosed = errors.New("session closed")
)

// State is the position of a Session in its read lifecycle
type State int

const (
	Idle State = iota
	Delivering
	Drained
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Delivering:
		return "delivering"
	case Drained:
		return "drained"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session owns the report generated for one selector
type Session struct {
	sel       process.Selector
	snapshot  process.Snapshot
	formatter *report.Formatter
	log       *logger.Logger

	mu     sync.Mutex
	state  State
	report *report.Report
	offset int
	closed bool
}

// New creates an Idle session. log may be nil.
func New(sel process.Selector, snapshot process.Snapshot, formatter *report.Formatter, log *logger.Logger) *Session {
	return &Session{
		sel:       sel,
		snapshot:  snapshot,
		formatter: formatter,
		log:       log,
	}
}

// Selector returns the selector the session was activated with
func (s *Session) Selector() process.Selector {
	return s.sel
}

// State returns the current lifecycle state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Report returns the frozen report, or nil before the first successful read
func (s *Session) Report() *report.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// Read copies the next part of the report into p.
//
// The first call generates the report. If no process matched, the error
// text is delivered and the returned error wraps ErrLookupNotFound; callers
// should use the n bytes before looking at the error. Once the report is
// consumed Read returns 0, io.EOF.
func (s *Session) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	var lookupErr error
	if s.state == Idle {
		r, err := s.generate()
		if err != nil {
			return 0, err
		}
		s.report = r
		s.state = Delivering

		if r.NotFound {
			lookupErr = fmt.Errorf("%w: %s", ErrLookupNotFound, s.sel)
		}
	}

	if s.state == Drained {
		return 0, io.EOF
	}

	n := copy(p, s.report.Bytes()[s.offset:])
	s.offset += n
	if s.offset >= s.report.Len() {
		s.state = Drained
	}

	return n, lookupErr
}

// WriteTo drains the rest of the session into w.
// A lookup failure is reported after the error text has been written.
func (s *Session) WriteTo(w io.Writer) (int64, error) {
	var (
		total     int64
		lookupErr error
	)

	chunk := make([]byte, report.DefaultLimit)
	for {
		n, err := s.Read(chunk)
		if n > 0 {
			written, werr := w.Write(chunk[:n])
			total += int64(written)
			if werr == nil && written != n {
				werr = io.ErrShortWrite
			}
			if werr != nil {
				return total, fmt.Errorf("%w: %w", ErrTransferFault, werr)
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return total, lookupErr
		case errors.Is(err, ErrLookupNotFound):
			lookupErr = err
		default:
			return total, err
		}
	}
}

// Close deactivates the session and releases the report
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.closed = true
	s.report = nil
	s.offset = 0

	if s.log != nil {
		s.log.Debugln("Session closed in state", s.state)
	}

	return nil
}

// generate runs the lookup and formats its outcome. Must be called with mu held.
func (s *Session) generate() (*report.Report, error) {
	rec, err := process.Find(s.sel, s.snapshot)
	switch {
	case err == nil:
		if s.log != nil {
			s.log.Debugln("Matched", s.sel, "to pid", rec.PID)
		}
		return s.formatter.Format(rec)

	case errors.Is(err, process.ErrNotFound):
		if s.log != nil {
			s.log.Warn("No process matches ", s.sel)
		}
		return s.formatter.FormatNotFound(s.sel)

	default:
		return nil, err
	}
}
