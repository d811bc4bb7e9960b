package core

// Action is a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; games only see intents.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionConfirm        // Enter, Space - open a cell, confirm selection
	ActionFlag           // F - toggle a flag (minesweeper)
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionBack           // B, Escape - back to menu
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
	case ActionFlag:
		return "Flag"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds all actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f *InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes all triggered actions, readying the frame for reuse.
func (f *InputFrame) Clear() {
	for a := range f.Actions {
		delete(f.Actions, a)
	}
}
