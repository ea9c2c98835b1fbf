package life

// CellState is the two-valued state of a grid cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// Toggle returns the opposite state.
func (s CellState) Toggle() CellState {
	if s == Alive {
		return Dead
	}
	return Alive
}

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}
