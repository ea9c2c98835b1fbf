// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It contains no external
// dependencies, in particular no Bubble Tea.
package core

// Vec2 is a 2D floating point position or size.
// Used for pointer positions, viewport sizes and board placement.
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// IsZero reports whether either component is zero, i.e. the vector
// cannot describe a usable area.
func (v Vec2) IsZero() bool {
	return v.X == 0 || v.Y == 0
}

// Bounds is an axis-aligned rectangle in floating point space.
// Position is the minimum corner, Size extends towards +X and +Y.
type Bounds struct {
	Position Vec2
	Size     Vec2
}

// Contains reports whether p lies inside the bounds.
// The minimum edges are inclusive, the maximum edges exclusive, so a point
// inside always maps to a valid cell index.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Position.X &&
		p.Y >= b.Position.Y &&
		p.X < b.Position.X+b.Size.X &&
		p.Y < b.Position.Y+b.Size.Y
}

// Rect represents an integer axis-aligned box in screen space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
