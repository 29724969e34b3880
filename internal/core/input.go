package core

// Action represents a semantic input action, abstracted from physical key presses.
// The simulation and the menu only ever see actions, never keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - previous character in the menu
	ActionDown           // Down arrow - next character in the menu
	ActionLeft           // Left arrow - previous difficulty in the menu
	ActionRight          // Right arrow - next difficulty in the menu
	ActionConfirm        // Enter - start the chase with the current selection
	ActionThrust         // Space - accelerate forward while held
	ActionQuit           // Q, Ctrl+C - end the session
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
	case ActionThrust:
		return "Thrust"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMenuAction reports whether the action navigates or confirms the menu.
func (a Action) IsMenuAction() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionConfirm:
		return true
	}
	return false
}

// menuOrder is the order in which menu actions found in one frame are applied.
var menuOrder = []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionConfirm}

// InputFrame represents the input state for a single frame.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Thrust reports whether the thrust control is held this frame.
func (f InputFrame) Thrust() bool {
	return f.Has(ActionThrust)
}

// Quit reports whether a quit was requested this frame.
func (f InputFrame) Quit() bool {
	return f.Has(ActionQuit)
}

// MenuActions returns the menu actions of this frame in a stable order.
func (f InputFrame) MenuActions() []Action {
	var out []Action
	for _, a := range menuOrder {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
