// Package core provides fundamental types shared by the quiz engine and its
// presentation layers. It has no external dependencies so the engine can be
// driven from tests without a terminal.
package core

// Rect is an axis-aligned area on a character grid, used as the bounds of a
// clickable button.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// CenteredRow returns a one-row rect of the given width centered in a line
// of lineWidth cells at row y. Wider content starts at column 0.
func CenteredRow(y, width, lineWidth int) Rect {
	x := (lineWidth - width) / 2
	if x < 0 {
		x = 0
	}
	return NewRect(x, y, width, 1)
}

// HitIndex returns the index of the first rect containing (x, y), or -1.
func HitIndex(rects []Rect, x, y int) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
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
