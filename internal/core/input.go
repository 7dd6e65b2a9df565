package core

// Motion is the discretized accelerometer reading for one tick. The sensor
// layer reduces raw acceleration to either a shake (magnitude spike) or a
// dominant tilt axis; only one motion event exists per tick.
type Motion int

const (
	MotionNone Motion = iota
	MotionShake
	MotionLeft
	MotionRight
	MotionForward
	MotionBackward
)

// String returns a human-readable name for the motion event.
func (m Motion) String() string {
	switch m {
	case MotionNone:
		return "none"
	case MotionShake:
		return "shake"
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionForward:
		return "forward"
	case MotionBackward:
		return "backward"
	default:
		return "unknown"
	}
}

// Input is the input snapshot for a single simulation tick.
//
// RotationDelta is the encoder movement since the last poll; by device design
// only one rotational direction ever yields a nonzero value. ButtonEdge is
// true exactly once per debounced press. ButtonHeld reports the current level
// of the button and drives the hold-based cooking phase.
type Input struct {
	Motion        Motion
	RotationDelta int
	ButtonEdge    bool
	ButtonHeld    bool
}

// Shake reports whether the shake flag is set this tick.
func (in Input) Shake() bool {
	return in.Motion == MotionShake
}

// InputSource polls the physical controls once per tick. A failed sensor read
// must degrade to the zero Input (no event this tick), never an error.
type InputSource interface {
	Poll() Input
}
