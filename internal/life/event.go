package life

import "fmt"

// Trigger is a user request to flip one cell.
type Trigger struct {
	Coord Coord
}

// Update is a committed state change for one cell. Applied updates are
// handed to the renderer unchanged.
type Update struct {
	Coord Coord
	State CellState
}

func (u Update) String() string {
	return fmt.Sprintf("%v->%v", u.Coord, u.State)
}

// Resolve turns a trigger into the update that flips the cell, reading the
// board's current state. Returns false for out-of-range coordinates.
func (b *Board) Resolve(t Trigger) (Update, bool) {
	if !b.grid.InRange(t.Coord) {
		return Update{}, false
	}
	return Update{Coord: t.Coord, State: b.grid.At(t.Coord).Toggle()}, true
}

// Apply writes updates to the grid in order, so a later update to the same
// coordinate wins. Out-of-range updates are skipped. Applying the same
// update again leaves the grid unchanged. Returns the updates that were
// applied, in order.
func (b *Board) Apply(updates []Update) []Update {
	applied := make([]Update, 0, len(updates))
	for _, u := range updates {
		if !b.grid.InRange(u.Coord) {
			continue
		}
		b.grid.Set(u.Coord, u.State)
		applied = append(applied, u)
	}
	return applied
}
