package core

// Key codes understood by the direction controller. They match the classic
// browser keyCode values for the arrow keys.
const (
	KeyLeft  = 37
	KeyUp    = 38
	KeyRight = 39
	KeyDown  = 40
)

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionConfirm        // Enter, Space - acknowledge game over
	ActionHelp           // ? - toggle full help
	ActionSave           // Ctrl+S - save a snapshot of the board
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionHelp:
		return "Help"
	case ActionSave:
		return "Save"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyCode returns the arrow key code for a directional action, or 0.
func (a Action) KeyCode() int {
	switch a {
	case ActionUp:
		return KeyUp
	case ActionDown:
		return KeyDown
	case ActionLeft:
		return KeyLeft
	case ActionRight:
		return KeyRight
	default:
		return 0
	}
}

// InputFrame holds the actions received between two ticks, in arrival order.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Add appends an action to the frame.
func (f *InputFrame) Add(a Action) {
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was received this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
