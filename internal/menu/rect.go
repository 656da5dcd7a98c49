package menu

import "fmt"

// Rect is a screen rectangle. Left/Top are inclusive, Right/Bottom
// exclusive.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRect builds a rectangle from an origin and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Width returns the rectangle's width.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the rectangle's height.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// String returns a compact description.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}
