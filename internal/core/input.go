package core

// Direction is one of the two logical steering inputs.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputListener receives press/release notifications from an input source.
type InputListener interface {
	KeyDown(d Direction)
	KeyUp(d Direction)
}

// InputSource delivers notifications to a single attached listener.
type InputSource interface {
	Attach(l InputListener)
}

// InputState holds the current pressed state of both directions.
// Notifications overwrite the state; the last writer wins.
type InputState struct {
	Left  bool
	Right bool
}

// KeyDown marks d as pressed.
func (s *InputState) KeyDown(d Direction) {
	s.set(d, true)
}

// KeyUp marks d as released.
func (s *InputState) KeyUp(d Direction) {
	s.set(d, false)
}

func (s *InputState) set(d Direction, pressed bool) {
	switch d {
	case DirLeft:
		s.Left = pressed
	case DirRight:
		s.Right = pressed
	}
}

var _ InputListener = (*InputState)(nil)
