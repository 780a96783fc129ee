// Package controller activates and deactivates report sessions.
//
// At most one session is live per controller, the way the proc entry
// exists only while the reporting component is loaded.
package controller

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"procinfo/process"
	"procinfo/report"
	"procinfo/session"

	"github.com/Moonlight-Companies/gologger/logger"
)

var (
	ErrAlreadyActive = errors.New("a session is already active")
	ErrNotActive     = errors.New("no active session")
)

// Controller hands out sessions bound to one snapshot source and formatter
type Controller struct {
	snapshot  process.Snapshot
	formatter *report.Formatter
	log       *logger.Logger

	mu     sync.Mutex
	active *session.Session
}

// Option configures a Controller
type Option func(*Controller)

func WithFormatter(f *report.Formatter) Option {
	return func(c *Controller) {
		if f != nil {
			c.formatter = f
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// New creates a controller reading processes from snapshot
func New(snapshot process.Snapshot, opts ...Option) (*Controller, error) {
	if snapshot == nil {
		return nil, process.ErrNilSnapshot
	}

	c := &Controller{snapshot: snapshot}
	for _, opt := range opts {
		opt(c)
	}
	if c.formatter == nil {
		c.formatter = report.NewFormatter(report.WithLogger(c.log))
	}

	return c, nil
}

// Activate starts a new session for sel
func (c *Controller) Activate(sel process.Selector) (*session.Session, error) {
	if !sel.IsValid() {
		return nil, fmt.Errorf("%w: no criterion set", process.ErrInvalidSelector)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyActive, c.active.Selector())
	}

	c.active = session.New(sel, c.snapshot, c.formatter, c.log)

	if c.log != nil {
		c.log.Infoln("Session activated for", sel)
	}

	return c.active, nil
}

// Active returns the live session, or nil
func (c *Controller) Active() *session.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Deactivate closes the live session
func (c *Controller) Deactivate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return ErrNotActive
	}

	sel := c.active.Selector()
	err := c.active.Close()
	c.active = nil

	if c.log != nil {
		c.log.Infoln("Session deactivated for", sel)
	}

	if err != nil && !errors.Is(err, session.ErrClosed) {
		return err
	}
	return nil
}

// Query runs one full cycle: activate, copy the report to w, deactivate.
// The returned error wraps session.ErrLookupNotFound when nothing matched;
// the error text has been written to w in that case.
func (c *Controller) Query(sel process.Selector, w io.Writer) error {
	s, err := c.Activate(sel)
	if err != nil {
		return err
	}

	_, copyErr := s.WriteTo(w)

	if err := c.Deactivate(); err != nil {
		return errors.Join(copyErr, err)
	}

	return copyErr
}
