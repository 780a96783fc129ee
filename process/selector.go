package process

import (
	"fmt"
	"strings"
)

type selectorKind uint8

const (
	selectorNone selectorKind = iota
	selectorPID
	selectorName
)

// Selector picks the process to report on, either by PID or by name.
// The zero value selects nothing and is rejected by Find.
type Selector struct {
	kind selectorKind
	pid  ProcessID
	name string
}

// ByPID returns a selector matching the process with the given PID
func ByPID(pid ProcessID) (Selector, error) {
	if pid < 0 {
		return Selector{}, fmt.Errorf("%w: negative pid %d", ErrInvalidSelector, pid)
	}
	return Selector{kind: selectorPID, pid: pid}, nil
}

// ByName returns a selector matching the first process named exactly name
func ByName(name string) (Selector, error) {
	if name == "" {
		return Selector{}, fmt.Errorf("%w: empty name", ErrInvalidSelector)
	}
	if len(name) > MaxNameLen {
		return Selector{}, fmt.Errorf("%w: name %q longer than %d bytes", ErrInvalidSelector, name, MaxNameLen)
	}
	if strings.IndexByte(name, 0) >= 0 {
		return Selector{}, fmt.Errorf("%w: name contains NUL", ErrInvalidSelector)
	}
	return Selector{kind: selectorName, name: name}, nil
}

// IsValid reports whether exactly one criterion is set
func (s Selector) IsValid() bool {
	return s.kind == selectorPID || s.kind == selectorName
}

// PID returns the PID criterion and whether the selector is a PID selector
func (s Selector) PID() (ProcessID, bool) {
	return s.pid, s.kind == selectorPID
}

// Name returns the name criterion and whether the selector is a name selector
func (s Selector) Name() (string, bool) {
	return s.name, s.kind == selectorName
}

// Matches reports whether rec satisfies the selector
func (s Selector) Matches(rec Record) bool {
	switch s.kind {
	case selectorPID:
		return rec.PID == s.pid
	case selectorName:
		return rec.Name == s.name
	default:
		return false
	}
}

func (s Selector) String() string {
	switch s.kind {
	case selectorPID:
		return fmt.Sprintf("pid=%d", s.pid)
	case selectorName:
		return fmt.Sprintf("name=%s", s.name)
	default:
		return "none"
	}
}
