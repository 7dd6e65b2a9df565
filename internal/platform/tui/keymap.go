package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/farmtofeast/harvest-hustle/internal/core"
)

// holdWindow is how long after an enter press the button still reads as
// held. Terminals deliver key repeats, not key-up events, so a hold is
// emulated by repeated presses landing inside this window.
const holdWindow = 250 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to the handheld's controls:
// tilt motions, the shake gesture, the rotary encoder, and the single button.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Apply folds one key message into the pending input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) Apply(msg tea.KeyMsg, frame *InputFrame) bool {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return true
	}

	switch key {
	case "left", "a":
		frame.motion = core.MotionLeft
	case "right", "d":
		frame.motion = core.MotionRight
	case "up", "w":
		frame.motion = core.MotionForward
	case "down", "s":
		frame.motion = core.MotionBackward
	case " ":
		frame.motion = core.MotionShake
	case "e", "tab":
		frame.rotation++
	case "enter":
		frame.button = true
		frame.lastPress = time.Now()
	}

	return false
}

// InputFrame accumulates key events between simulation ticks and converts
// them into one core.Input snapshot per tick.
type InputFrame struct {
	motion    core.Motion
	rotation  int
	button    bool
	lastPress time.Time
}

// Poll implements core.InputSource against the wall clock.
func (f *InputFrame) Poll() core.Input {
	return f.Take(time.Now())
}

// Take returns the input snapshot for this tick and clears the edge-style
// fields. The hold level persists as long as presses keep landing inside
// the hold window.
func (f *InputFrame) Take(now time.Time) core.Input {
	in := core.Input{
		Motion:        f.motion,
		RotationDelta: f.rotation,
		ButtonEdge:    f.button,
		ButtonHeld:    !f.lastPress.IsZero() && now.Sub(f.lastPress) < holdWindow,
	}
	f.motion = core.MotionNone
	f.rotation = 0
	f.button = false
	return in
}

var _ core.InputSource = (*InputFrame)(nil)
