package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessStateLabel(t *testing.T) {
	tests := []struct {
		state ProcessState
		want  string
	}{
		{StateRunning, "Running"},
		{StateInterruptibleSleep, "Interruptible Sleep"},
		{StateUninterruptibleSleep, "Uninterruptible Sleep"},
		{StateStopped, "Stopped"},
		{StateTraced, "Traced"},
		{StateZombie, "Zombie"},
		{StateDeadExit, "Dead (Exit)"},
		{StateDead, "Dead"},
		{StateWakekill, "Wakekill"},
		{StateWaking, "Waking"},
		{StateMax, "State Max"},
		{StateUnknown, "Unknown"},
		{ProcessState(3), "Unknown"},
		{ProcessState(1024), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Label())
			assert.Equal(t, tt.want, Classify(int(tt.state)))
		})
	}
}

func TestParseStateLetter(t *testing.T) {
	tests := map[string]ProcessState{
		"R": StateRunning,
		"S": StateInterruptibleSleep,
		"D": StateUninterruptibleSleep,
		"T": StateStopped,
		"t": StateTraced,
		"Z": StateZombie,
		"X": StateDeadExit,
		"x": StateDead,
		"K": StateWakekill,
		"W": StateWaking,
		"I": StateUnknown,
		"P": StateUnknown,
		"":  StateUnknown,
	}

	for letter, want := range tests {
		assert.Equal(t, want, ParseStateLetter(letter), "letter %q", letter)
	}
}

func TestIsRunning(t *testing.T) {
	assert.True(t, StateRunning.IsRunning())
	assert.False(t, StateStopped.IsRunning())
	assert.False(t, StateUnknown.IsRunning())
}
