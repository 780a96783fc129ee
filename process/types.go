package process

// ProcessID represents a unique identifier for a process
type ProcessID int

// NoParent is reported as the parent PID of a process without a parent
const NoParent ProcessID = -1

// MaxNameLen is the longest process name the kernel keeps (TASK_COMM_LEN minus the NUL)
const MaxNameLen = 15

// Record is a copy of one process taken out of a Snapshot
type Record struct {
	PID       ProcessID    // Process ID
	Name      string       // Process name from /proc/[pid]/comm
	PPID      ProcessID    // Parent Process ID, only meaningful when HasParent is set
	HasParent bool         // False for the root of the process tree
	UID       uint32       // Real UID of the owning user
	State     ProcessState // Lifecycle state code
	VMPages   uint64       // Total virtual memory, in pages
	HasMemory bool         // False for processes without a memory context (kernel threads)
}

// ParentPID returns the parent PID, or NoParent when the process has none
func (r Record) ParentPID() ProcessID {
	if !r.HasParent {
		return NoParent
	}
	return r.PPID
}
