package host

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridkit/space"
)

// rubberBand is a line drawn over the grid while a resize is captured
type rubberBand struct {
	grid     *Grid
	geometry space.Rect
	visible  bool
	closed   bool
}

func (b *rubberBand) SetGeometry(r space.Rect) {
	b.geometry = r
}

func (b *rubberBand) Geometry() space.Rect {
	return b.geometry
}

func (b *rubberBand) Show() {
	b.visible = true
}

// Close removes the band from its grid, further calls are no-ops
func (b *rubberBand) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.visible = false
	b.grid.removeBand(b)
}

// draw writes the band straight to the screen, outside any clip
func (b *rubberBand) draw(screen tcell.Screen, style tcell.Style) {
	if !b.visible {
		return
	}
	ch := '┃'
	if b.geometry.W > b.geometry.H {
		ch = '━'
	}
	sw, sh := screen.Size()
	r := b.geometry.Intersect(space.NewRect(0, 0, sw, sh))
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}
