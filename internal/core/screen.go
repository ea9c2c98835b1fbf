package core

import (
	"strings"
)

// Cell is one character position of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer for rendering.
// It decouples drawing from the terminal, allowing the platform to draw
// using simple rune operations and style the result in one pass.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a rune with the default color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns an uncolored space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: color})
		i++
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, color Color) {
	set := func(x, y int, ch rune) { s.SetCell(x, y, Cell{Rune: ch, Color: color}) }

	// Corners
	set(r.X, r.Y, '┌')
	set(r.Right()-1, r.Y, '┐')
	set(r.X, r.Bottom()-1, '└')
	set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		set(x, r.Y, '─')
		set(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		set(r.X, y, '│')
		set(r.Right()-1, y, '│')
	}
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
