package core

// Action represents a semantic game action, abstracted from physical key presses.
// Letter keys are not actions: they travel in InputFrame.Runes.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow - previous word length
	ActionRight          // Right arrow - next word length
	ActionConfirm        // Enter - new round after game over
	ActionBack           // Escape - leave the current view
	ActionRestart        // Ctrl+R - start a new round at any time
	ActionQuit           // Ctrl+C - exit
	ActionHistory        // Tab - show round history
	ActionRename         // Ctrl+N - edit player name
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHistory:
		return "History"
	case ActionRename:
		return "Rename"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input delivered to a game in one step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Runes holds typed characters in arrival order.
	Runes []rune
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddRune appends a typed character.
func (f *InputFrame) AddRune(r rune) {
	f.Runes = append(f.Runes, r)
}

// Empty reports whether the frame carries no input.
func (f InputFrame) Empty() bool {
	return len(f.Runes) == 0 && len(f.Actions) == 0
}
