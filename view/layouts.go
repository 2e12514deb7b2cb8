package view

import "github.com/lixenwraith/gridkit/space"

type fillLayout struct{}

// Fill takes all remaining space
func Fill() Layout { return fillLayout{} }

func (fillLayout) IsFloat() bool { return false }

func (fillLayout) Arrange(avail *space.Rect) space.Rect {
	r := *avail
	*avail = space.NewRect(avail.X+avail.W, avail.Y, 0, avail.H)
	return r
}

type edgeLayout struct {
	edge Edge
	size int
}

// Edge names the side an edge layout takes space from
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Left takes n columns from the left of the remaining space
func Left(n int) Layout { return edgeLayout{edge: EdgeLeft, size: n} }

// Right takes n columns from the right of the remaining space
func Right(n int) Layout { return edgeLayout{edge: EdgeRight, size: n} }

// Top takes n rows from the top of the remaining space
func Top(n int) Layout { return edgeLayout{edge: EdgeTop, size: n} }

// Bottom takes n rows from the bottom of the remaining space
func Bottom(n int) Layout { return edgeLayout{edge: EdgeBottom, size: n} }

func (l edgeLayout) IsFloat() bool { return false }

func (l edgeLayout) Arrange(avail *space.Rect) space.Rect {
	a := *avail
	switch l.edge {
	case EdgeLeft:
		w := clampSize(l.size, a.W)
		*avail = space.NewRect(a.X+w, a.Y, a.W-w, a.H)
		return space.NewRect(a.X, a.Y, w, a.H)
	case EdgeRight:
		w := clampSize(l.size, a.W)
		*avail = space.NewRect(a.X, a.Y, a.W-w, a.H)
		return space.NewRect(a.X+a.W-w, a.Y, w, a.H)
	case EdgeTop:
		h := clampSize(l.size, a.H)
		*avail = space.NewRect(a.X, a.Y+h, a.W, a.H-h)
		return space.NewRect(a.X, a.Y, a.W, h)
	default:
		h := clampSize(l.size, a.H)
		*avail = space.NewRect(a.X, a.Y, a.W, a.H-h)
		return space.NewRect(a.X, a.Y+a.H-h, a.W, h)
	}
}

func clampSize(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}

type floatLayout struct {
	inner Layout
}

// Float places its region with inner but consumes nothing, the region
// overlays whatever is laid out after it
func Float(inner Layout) Layout { return floatLayout{inner: inner} }

func (floatLayout) IsFloat() bool { return true }

func (l floatLayout) Arrange(avail *space.Rect) space.Rect {
	scratch := *avail
	return l.inner.Arrange(&scratch)
}
