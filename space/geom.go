package space

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is a rectangle in cell space, origin plus dimensions
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rect, negative dimensions collapse to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the first column inside the rect
func (r Rect) Left() int { return r.X }

// Top returns the first row inside the rect
func (r Rect) Top() int { return r.Y }

// Right returns the last column inside the rect
func (r Rect) Right() int { return r.X + r.W - 1 }

// Bottom returns the last row inside the rect
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

// TopLeft returns the origin
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the overlap of two rects, zero-sized when disjoint
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersects reports whether the rects share at least one cell
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// WithLeft returns r with its left edge moved to x, keeping the right edge
func (r Rect) WithLeft(x int) Rect {
	return NewRect(x, r.Y, r.X+r.W-x, r.H)
}

// WithTop returns r with its top edge moved to y, keeping the bottom edge
func (r Rect) WithTop(y int) Rect {
	return NewRect(r.X, y, r.W, r.Y+r.H-y)
}

// WithRight returns r with its right edge moved to x (inclusive)
func (r Rect) WithRight(x int) Rect {
	return NewRect(r.X, r.Y, x-r.X+1, r.H)
}

// WithBottom returns r with its bottom edge moved to y (inclusive)
func (r Rect) WithBottom(y int) Rect {
	return NewRect(r.X, r.Y, r.W, y-r.Y+1)
}
