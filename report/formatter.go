package report

import (
	"path"
	"strconv"

	"procinfo/process"

	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/dustin/go-humanize"
)

// DefaultRoot is the namespace root used to build the Path line
const DefaultRoot = "/proc"

// Formatter builds reports. The zero value is not usable, use NewFormatter.
type Formatter struct {
	estimator MemoryEstimator
	root      string
	limit     int
	log       *logger.Logger
}

// Option configures a Formatter
type Option func(*Formatter)

func WithEstimator(e MemoryEstimator) Option {
	return func(f *Formatter) {
		f.estimator = e
	}
}

// WithRoot sets the directory the Path line points into
func WithRoot(root string) Option {
	return func(f *Formatter) {
		if root != "" {
			f.root = root
		}
	}
}

// WithLimit bounds the serialized size of a report
func WithLimit(limit int) Option {
	return func(f *Formatter) {
		if limit > 0 {
			f.limit = limit
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(f *Formatter) {
		f.log = l
	}
}

func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		estimator: NewMemoryEstimator(),
		root:      DefaultRoot,
		limit:     DefaultLimit,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format describes rec. Lines come in a fixed order:
// Name, PID, PPID, UID, Path, State, Memory usage.
func (f *Formatter) Format(rec process.Record) (*Report, error) {
	r := &Report{
		Name:     rec.Name,
		PID:      rec.PID,
		PPID:     rec.ParentPID(),
		UID:      rec.UID,
		Path:     path.Join(f.root, strconv.Itoa(int(rec.PID))),
		State:    rec.State.Label(),
		MemoryKB: f.estimator.Estimate(rec),
	}
	r.MemoryShown = rec.State.IsRunning()

	buf := NewBuffer(f.limit)
	buf.Printf("Name: %s\n", r.Name)
	buf.Printf("PID: %d\n", r.PID)
	buf.Printf("PPID: %d\n", r.PPID)
	buf.Printf("UID: %d\n", r.UID)
	buf.Printf("Path: %s\n", r.Path)
	buf.Printf("State: %s\n", r.State)
	if r.MemoryShown {
		buf.Printf("Memory usage: %d KB\n", r.MemoryKB)
	} else {
		buf.Printf("Memory usage: %s\n", NotRunningMarker)
	}

	text, err := buf.Bytes()
	if err != nil {
		return nil, err
	}
	r.text = text

	if f.log != nil {
		f.log.Debugln("Formatted report for pid", r.PID, "state", r.State,
			"virtual memory", humanize.IBytes(r.MemoryKB<<10))
	}

	return r, nil
}

// FormatNotFound describes a failed lookup for sel as a single line
func (f *Formatter) FormatNotFound(sel process.Selector) (*Report, error) {
	r := &Report{NotFound: true, Selector: sel}

	buf := NewBuffer(f.limit)
	if pid, ok := sel.PID(); ok {
		buf.Printf("Error: Process with ID %d not found.\n", pid)
	} else {
		name, _ := sel.Name()
		buf.Printf("Error: Process with name %s not found.\n", name)
	}

	text, err := buf.Bytes()
	if err != nil {
		return nil, err
	}
	r.text = text

	return r, nil
}
