package life

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
)

// ErrInvalidCellSize is returned when the cell edge length is not positive.
var ErrInvalidCellSize = errors.New("life: cell size must be positive")

// BoardOptions describes the grid dimensions and its spatial placement.
type BoardOptions struct {
	Width       int     // Grid columns
	Height      int     // Grid rows
	CellSize    float64 // Edge length of one cell in pointer units
	CellPadding float64 // Gap between drawn cells (renderer only)
}

// Board owns the grid together with its placement in a Y-up, origin-centered
// space. The board is centered on the origin: its minimum corner sits at
// -extent/2.
type Board struct {
	grid        *Grid
	origin      core.Vec2
	extent      core.Vec2
	cellSize    float64
	cellPadding float64
}

// NewBoard creates an all-dead board from opts.
func NewBoard(opts BoardOptions) (*Board, error) {
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCellSize, opts.CellSize)
	}

	grid, err := NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	extent := core.V(float64(opts.Width)*opts.CellSize, float64(opts.Height)*opts.CellSize)
	return &Board{
		grid:        grid,
		origin:      extent.Scale(-0.5),
		extent:      extent,
		cellSize:    opts.CellSize,
		cellPadding: opts.CellPadding,
	}, nil
}

// Grid exposes the underlying grid for read access (first paint).
func (b *Board) Grid() *Grid {
	return b.grid
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.grid.Width()
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.grid.Height()
}

// CellSize returns the edge length of one cell.
func (b *Board) CellSize() float64 {
	return b.cellSize
}

// CellPadding returns the visual gap between cells.
func (b *Board) CellPadding() float64 {
	return b.cellPadding
}

// Origin returns the board's minimum corner.
func (b *Board) Origin() core.Vec2 {
	return b.origin
}

// Extent returns the board's size, always (width*cellSize, height*cellSize).
func (b *Board) Extent() core.Vec2 {
	return b.extent
}

// Bounds returns the board's bounding rectangle in board space.
func (b *Board) Bounds() core.Bounds {
	return core.Bounds{Position: b.origin, Size: b.extent}
}

// InRange reports whether c addresses a cell of the board.
func (b *Board) InRange(c Coord) bool {
	return b.grid.InRange(c)
}

// IsAlive reports whether c is in range and alive.
func (b *Board) IsAlive(c Coord) bool {
	return b.grid.InRange(c) && b.grid.At(c) == Alive
}

// Set changes the state of c. The caller must have checked InRange.
func (b *Board) Set(c Coord, state CellState) {
	b.grid.Set(c, state)
}

// CountNeighbors returns the number of live cells among the 8 neighbors of c.
// An offset that saturates at zero lands on a cell that is not the intended
// neighbor (possibly c itself, or a neighbor already visited) and is not
// counted; neither are offsets leaving the grid. Edge and corner cells only
// see their on-grid neighbors, each at most once.
func (b *Board) CountNeighbors(c Coord) int {
	count := 0
	for _, off := range neighborOffsets {
		n := c.Offset(off[0], off[1])
		if n.X-c.X != off[0] || n.Y-c.Y != off[1] {
			continue // clamped
		}
		if !b.grid.InRange(n) {
			continue
		}
		if b.grid.At(n) == Alive {
			count++
		}
	}
	return count
}

// MousePosition translates a pointer position into a grid coordinate.
// The pointer is given in viewport space (top-left origin, Y down); it is
// flipped to Y-up and re-centered on the viewport before being tested
// against the board bounds. Returns false when no cell is under the pointer
// or when the viewport is unknown.
func (b *Board) MousePosition(pointer, viewport core.Vec2) (Coord, bool) {
	if viewport.IsZero() {
		return Coord{}, false
	}

	p := core.V(pointer.X, viewport.Y-pointer.Y).Sub(viewport.Scale(0.5))
	if !b.Bounds().Contains(p) {
		return Coord{}, false
	}

	local := p.Sub(b.origin)
	c := Coord{
		X: int(local.X / b.cellSize),
		Y: int(local.Y / b.cellSize),
	}
	if !b.grid.InRange(c) {
		return Coord{}, false
	}
	return c, true
}

// CellCenter returns the center of c in board space.
func (b *Board) CellCenter(c Coord) core.Vec2 {
	return b.origin.Add(core.V(
		(float64(c.X)+0.5)*b.cellSize,
		(float64(c.Y)+0.5)*b.cellSize,
	))
}

// ViewportPosition returns the center of c in viewport space (top-left
// origin, Y down). It is the inverse of MousePosition and lets a renderer
// place cells exactly where clicks will resolve them.
func (b *Board) ViewportPosition(c Coord, viewport core.Vec2) core.Vec2 {
	p := b.CellCenter(c).Add(viewport.Scale(0.5))
	return core.V(p.X, viewport.Y-p.Y)
}
