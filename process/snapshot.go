package process

// Snapshot enumerates the processes currently known to the operating system.
//
// Each walks the process set in its natural order and calls fn for every
// process until fn returns false. Records are handed out by value; processes
// that exit while the walk is in progress are skipped.
type Snapshot interface {
	Each(fn func(Record) bool) error
}

// StaticSnapshot is a fixed process set, enumerated in slice order
type StaticSnapshot []Record

func (s StaticSnapshot) Each(fn func(Record) bool) error {
	for _, rec := range s {
		if !fn(rec) {
			return nil
		}
	}
	return nil
}
