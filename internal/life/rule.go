package life

// Evolve computes one generation of B3/S23 for the whole board and returns
// only the cells whose state changes. The board is read but not modified:
// every neighbor count observes the previous generation.
// Updates are ordered row-major (Y outer, X inner).
func Evolve(b *Board) []Update {
	var updates []Update

	b.grid.Each(func(c Coord, state CellState) {
		n := b.CountNeighbors(c)
		switch {
		case state == Alive && n != 2 && n != 3:
			updates = append(updates, Update{Coord: c, State: Dead})
		case state == Dead && n == 3:
			updates = append(updates, Update{Coord: c, State: Alive})
		}
	})

	return updates
}
