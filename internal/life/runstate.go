package life

// RunState gates automatic evolution.
type RunState int

const (
	// Initial is the paused, editable state. Triggers are processed and the
	// rule engine never runs.
	Initial RunState = iota
	// Running evolves the board once per timer interval. Triggers are dropped.
	Running
)

// Toggle returns the other state.
func (s RunState) Toggle() RunState {
	if s == Running {
		return Initial
	}
	return Running
}

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "initial"
}
