// Package life implements the Game of Life simulation core: the grid, the
// board placement used for pointer mapping, the B3/S23 rule engine, the
// trigger/update event protocol and the run-state machine that gates
// evolution. It has no knowledge of how cells are drawn.
package life

import (
	"errors"
	"fmt"
)

// ErrDegenerateGrid is returned when a grid would have no cells.
var ErrDegenerateGrid = errors.New("life: grid width and height must be positive")

// Grid is a fixed-size rectangular array of cell states.
// Rows are indexed by Y, columns by X; every row has the same length.
type Grid struct {
	width  int
	height int
	rows   [][]CellState
	alive  int // Number of live cells, maintained by Set
}

// NewGrid creates a width x height grid with every cell dead.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDegenerateGrid, width, height)
	}

	rows := make([][]CellState, height)
	for y := range rows {
		rows[y] = make([]CellState, width)
	}
	return &Grid{width: width, height: height, rows: rows}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InRange reports whether c addresses a cell of this grid.
func (g *Grid) InRange(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the state at c. It panics if c is out of range; callers must
// check InRange first.
func (g *Grid) At(c Coord) CellState {
	g.mustInRange(c)
	return g.rows[c.Y][c.X]
}

// Set stores state at c. It panics if c is out of range.
func (g *Grid) Set(c Coord, state CellState) {
	g.mustInRange(c)

	prev := g.rows[c.Y][c.X]
	if prev == state {
		return
	}
	g.rows[c.Y][c.X] = state
	if state == Alive {
		g.alive++
	} else {
		g.alive--
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	return g.alive
}

// Each calls fn for every cell in row-major order (Y outer, X inner).
func (g *Grid) Each(fn func(c Coord, state CellState)) {
	for y, row := range g.rows {
		for x, state := range row {
			fn(Coord{X: x, Y: y}, state)
		}
	}
}

// AliveCoords returns the coordinates of all live cells in row-major order.
func (g *Grid) AliveCoords() []Coord {
	coords := make([]Coord, 0, g.alive)
	g.Each(func(c Coord, state CellState) {
		if state == Alive {
			coords = append(coords, c)
		}
	})
	return coords
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	rows := make([][]CellState, g.height)
	for y := range g.rows {
		rows[y] = make([]CellState, g.width)
		copy(rows[y], g.rows[y])
	}
	return &Grid{width: g.width, height: g.height, rows: rows, alive: g.alive}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.rows {
		for x := range g.rows[y] {
			if g.rows[y][x] != other.rows[y][x] {
				return false
			}
		}
	}
	return true
}

func (g *Grid) mustInRange(c Coord) {
	if !g.InRange(c) {
		panic(fmt.Sprintf("life: coordinate %v out of range for %dx%d grid", c, g.width, g.height))
	}
}
