package tui

import (
	"math"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// A board cell is drawn two characters wide and one character tall, which
// is roughly square in most terminal fonts.
const charsPerCell = 2

// cellHandle locates the characters that draw one board cell.
type cellHandle struct {
	col, row int
}

// Canvas draws the board into a screen buffer and keeps a registry from
// grid coordinates to screen positions, so each tick only redraws the
// cells that changed.
//
// Terminal characters are mapped into the board's pointer space: one
// character is cellSize/2 wide and cellSize tall. The canvas area is the
// viewport handed to Board.MousePosition, so clicks resolve to exactly the
// cell drawn under the pointer.
type Canvas struct {
	board    *life.Board
	screen   *core.Screen
	viewport core.Vec2
	cells    map[life.Coord]cellHandle
	frame    core.Rect
	framed   bool
	title    string
}

// NewCanvas creates a canvas for board sized to fit the given area.
func NewCanvas(board *life.Board, width, height int) *Canvas {
	c := &Canvas{
		board:  board,
		screen: core.NewScreen(0, 0),
	}
	c.Layout(width, height)
	return c
}

// charSize returns the pointer-space size of one terminal character.
func (c *Canvas) charSize() core.Vec2 {
	cs := c.board.CellSize()
	return core.V(cs/charsPerCell, cs)
}

// Layout recomputes the registry for a new area and repaints from the grid.
func (c *Canvas) Layout(width, height int) {
	// The board is centered; keep the margins whole characters so cell
	// edges fall on character boundaries.
	cols := width - width%2
	rows := height
	if (rows-c.board.Height())%2 != 0 {
		rows--
	}
	cols = max(cols, 0)
	rows = max(rows, 0)

	c.screen.Resize(cols, rows)
	ch := c.charSize()
	c.viewport = core.V(float64(cols)*ch.X, float64(rows)*ch.Y)
	c.cells = make(map[life.Coord]cellHandle, c.board.Width()*c.board.Height())
	c.framed = false

	if cols == 0 || rows == 0 {
		return
	}

	c.board.Grid().Each(func(coord life.Coord, _ life.CellState) {
		p := c.board.ViewportPosition(coord, c.viewport)
		h := cellHandle{
			col: int(math.Round(p.X/ch.X)) - 1,
			row: int(math.Floor(p.Y / ch.Y)),
		}
		if h.col < 0 || h.col+charsPerCell > cols || h.row < 0 || h.row >= rows {
			return // clipped
		}
		c.cells[coord] = h
	})

	if len(c.cells) == c.board.Width()*c.board.Height() {
		// Top-left cell is (0, height-1).
		tl := c.cells[life.C(0, c.board.Height()-1)]
		c.frame = core.NewRect(tl.col-1, tl.row-1, c.board.Width()*charsPerCell+2, c.board.Height()+2)
		c.framed = c.frame.X >= 0 && c.frame.Y >= 0 && c.frame.Right() <= cols && c.frame.Bottom() <= rows
	}

	c.Repaint()
}

// SetTitle sets the label drawn on the board frame.
func (c *Canvas) SetTitle(title string) {
	c.title = title
	c.Repaint()
}

// Repaint redraws every cell from the grid.
func (c *Canvas) Repaint() {
	c.screen.Clear()
	if c.framed {
		c.screen.DrawBox(c.frame, core.ColorGray)
		if c.title != "" && len(c.title)+4 <= c.frame.W {
			c.screen.DrawText(c.frame.X+2, c.frame.Y, " "+c.title+" ", core.ColorYellow)
		}
	}
	c.board.Grid().Each(func(coord life.Coord, state life.CellState) {
		c.draw(coord, state)
	})
}

// Apply redraws the cells named by updates.
func (c *Canvas) Apply(updates []life.Update) {
	for _, u := range updates {
		c.draw(u.Coord, u.State)
	}
}

// Pointer converts a terminal character position into pointer space,
// using the center of the character.
func (c *Canvas) Pointer(col, row int) core.Vec2 {
	ch := c.charSize()
	return core.V((float64(col)+0.5)*ch.X, (float64(row)+0.5)*ch.Y)
}

// Viewport returns the pointer-space size of the canvas. It is zero when
// the area is too small to draw anything.
func (c *Canvas) Viewport() core.Vec2 {
	return c.viewport
}

// Screen returns the screen buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Area returns the screen area the canvas occupies.
func (c *Canvas) Area() core.Rect {
	return core.NewRect(0, 0, c.screen.Width(), c.screen.Height())
}

func (c *Canvas) draw(coord life.Coord, state life.CellState) {
	h, ok := c.cells[coord]
	if !ok {
		return
	}
	glyph := c.glyph(state)
	for i, r := range glyph {
		c.screen.SetCell(h.col+i, h.row, r)
	}
}

// glyph returns the characters for one cell. Cells with visual padding are
// drawn narrower so the gaps show.
func (c *Canvas) glyph(state life.CellState) [charsPerCell]core.Cell {
	padded := c.board.CellPadding() > 0
	switch {
	case state == life.Alive && padded:
		return [charsPerCell]core.Cell{{Rune: '█', Color: core.ColorBrightGreen}, {Rune: '▌', Color: core.ColorBrightGreen}}
	case state == life.Alive:
		return [charsPerCell]core.Cell{{Rune: '█', Color: core.ColorBrightGreen}, {Rune: '█', Color: core.ColorBrightGreen}}
	default:
		return [charsPerCell]core.Cell{{Rune: '·', Color: core.ColorDarkGray}, {Rune: ' ', Color: core.ColorDarkGray}}
	}
}
