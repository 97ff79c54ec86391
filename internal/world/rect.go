package world

// Rect is an axis-aligned integer rectangle spanning (X1,Y1) to (X2,Y2).
// Rooms are carved into the cells strictly past the origin corner, so a
// Rect built with NewRect(x, y, w, h) paints w*h floor cells.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rectangle with its origin at (x, y) and the given size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the truncated midpoint of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects returns true if the rectangles overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains returns true if (x, y) is one of the cells ApplyRoom paints.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}

// Width returns the number of floor columns the rectangle paints.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the number of floor rows the rectangle paints.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}
