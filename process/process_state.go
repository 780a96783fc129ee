package process

// ProcessState is a lifecycle state code, using the kernel task state bits
type ProcessState int

const (
	StateUnknown              ProcessState = -1
	StateRunning              ProcessState = 0   // TASK_RUNNING
	StateInterruptibleSleep   ProcessState = 1   // TASK_INTERRUPTIBLE
	StateUninterruptibleSleep ProcessState = 2   // TASK_UNINTERRUPTIBLE
	StateStopped              ProcessState = 4   // __TASK_STOPPED
	StateTraced               ProcessState = 8   // __TASK_TRACED
	StateZombie               ProcessState = 16  // EXIT_ZOMBIE
	StateDeadExit             ProcessState = 32  // EXIT_DEAD
	StateDead                 ProcessState = 64  // TASK_DEAD
	StateWakekill             ProcessState = 128 // TASK_WAKEKILL
	StateWaking               ProcessState = 256 // TASK_WAKING
	StateMax                  ProcessState = 512 // TASK_STATE_MAX
)

// Label returns the human readable name of the state.
// Codes outside the known set are labelled "Unknown".
func (s ProcessState) Label() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateInterruptibleSleep:
		return "Interruptible Sleep"
	case StateUninterruptibleSleep:
		return "Uninterruptible Sleep"
	case StateStopped:
		return "Stopped"
	case StateTraced:
		return "Traced"
	case StateZombie:
		return "Zombie"
	case StateDeadExit:
		return "Dead (Exit)"
	case StateDead:
		return "Dead"
	case StateWakekill:
		return "Wakekill"
	case StateWaking:
		return "Waking"
	case StateMax:
		return "State Max"
	default:
		return "Unknown"
	}
}

func (s ProcessState) String() string {
	return s.Label()
}

// IsRunning reports whether the state is StateRunning
func (s ProcessState) IsRunning() bool {
	return s == StateRunning
}

// Classify maps a raw state code to its label
func Classify(code int) string {
	return ProcessState(code).Label()
}

// ParseStateLetter converts the state letter found in /proc/[pid]/stat
// into a state code. Letters without a matching code (I, P, ...) map to StateUnknown.
func ParseStateLetter(letter string) ProcessState {
	if letter == "" {
		return StateUnknown
	}

	switch letter[0] {
	case 'R':
		return StateRunning
	case 'S':
		return StateInterruptibleSleep
	case 'D':
		return StateUninterruptibleSleep
	case 'T':
		return StateStopped
	case 't':
		return StateTraced
	case 'Z':
		return StateZombie
	case 'X':
		return StateDeadExit
	case 'x':
		return StateDead
	case 'K':
		return StateWakekill
	case 'W':
		return StateWaking
	default:
		return StateUnknown
	}
}
