package core

// Action represents a semantic command, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionToggleRun        // Space - switch between editing and running
	ActionClear            // C - kill every cell (editing only)
	ActionHelp             // ? - toggle the full key help
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggleRun:
		return "ToggleRun"
	case ActionClear:
		return "Clear"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
