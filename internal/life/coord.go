package life

import "fmt"

// Coord is a grid index. X grows to the right and Y grows upward, matching
// the board's Y-up layout. Both components are non-negative; arithmetic
// saturates at zero instead of producing negative indices.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord. Negative inputs are clamped to 0.
func C(x, y int) Coord {
	return Coord{X: saturate(x), Y: saturate(y)}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Offset returns c shifted by a signed delta. A component that would drop
// below zero is clamped to zero, so the result may coincide with c itself
// at the lower edges. Callers must range-check the result.
func (c Coord) Offset(dx, dy int) Coord {
	return Coord{X: saturate(c.X + dx), Y: saturate(c.Y + dy)}
}

// Sub returns c minus other, saturating each component at zero.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: saturate(c.X - other.X), Y: saturate(c.Y - other.Y)}
}

func saturate(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// neighborOffsets lists the 8-connected neighborhood.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
