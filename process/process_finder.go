package process

import "fmt"

// Find returns the first process of snap, in enumeration order, matching sel.
//
// Names are compared exactly and case-sensitively. When several processes
// share the name, whichever the snapshot visits first wins; the order is
// that of the underlying process table and is not guaranteed to be stable.
// ErrNotFound is returned when nothing matches.
func Find(sel Selector, snap Snapshot) (Record, error) {
	if !sel.IsValid() {
		return Record{}, fmt.Errorf("%w: no criterion set", ErrInvalidSelector)
	}
	if snap == nil {
		return Record{}, ErrNilSnapshot
	}

	var (
		found Record
		ok    bool
	)

	err := snap.Each(func(rec Record) bool {
		if sel.Matches(rec) {
			found = rec
			ok = true
			return false
		}
		return true
	})
	if err != nil {
		return Record{}, fmt.Errorf("failed to scan processes: %w", err)
	}

	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, sel)
	}

	return found, nil
}
