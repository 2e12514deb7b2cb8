package controller

import (
	"log"

	"github.com/lixenwraith/gridkit/gui"
	"github.com/lixenwraith/gridkit/space"
)

const (
	// ToleranceZone is how far from a trailing edge the pointer still grabs it
	ToleranceZone = 3
	// MinLineSize is the smallest size a resize commits
	MinLineSize = 5
)

// LineSizer is the line collection a resizer commits to
type LineSizer interface {
	SetLineSize(index, size int)
}

// Axis selects which lines a resizer acts on
type Axis uint8

const (
	AxisColumns Axis = iota // horizontal drag, widths
	AxisRows                // vertical drag, heights
)

// String returns human-readable axis name
func (a Axis) String() string {
	if a == AxisRows {
		return "rows"
	}
	return "columns"
}

func (a Axis) coord(p space.Point) int {
	if a == AxisRows {
		return p.Y
	}
	return p.X
}

func (a Axis) leading(r space.Rect) int {
	if a == AxisRows {
		return r.Top()
	}
	return r.Left()
}

func (a Axis) trailing(r space.Rect) int {
	if a == AxisRows {
		return r.Bottom()
	}
	return r.Right()
}

func (a Axis) index(item space.ItemID) int {
	if a == AxisRows {
		return item.Row
	}
	return item.Column
}

func (a Axis) cursor() gui.Cursor {
	if a == AxisRows {
		return gui.CursorSplitV
	}
	return gui.CursorSplitH
}

// withinTolerance compares |delta| to ToleranceZone. Columns include the
// boundary, rows exclude it.
// TODO: confirm with product whether rows should also accept the boundary.
func (a Axis) withinTolerance(delta int) bool {
	if delta < 0 {
		delta = -delta
	}
	if a == AxisRows {
		return delta < ToleranceZone
	}
	return delta <= ToleranceZone
}

// OnEdge reports whether the entry under the pointer is the one-cell strip
// along the item's trailing edge on this axis
func (a Axis) OnEdge(info ActivationInfo) bool {
	if info.Cache == nil {
		return false
	}
	r := info.Cache.Rect()
	if a == AxisRows {
		return r.H == 1 && r.Bottom() == info.ItemRect.Bottom()
	}
	return r.W == 1 && r.Right() == info.ItemRect.Right()
}

// band returns a one-cell line across the whole widget at pos
func (a Axis) band(widget space.Rect, pos int) space.Rect {
	if a == AxisRows {
		return widget.WithTop(pos).WithBottom(pos)
	}
	return widget.WithLeft(pos).WithRight(pos)
}

// LinesResizer resizes a column or row by dragging its trailing edge
type LinesResizer struct {
	Captured

	axis  Axis
	lines LineSizer
	scope func(info ActivationInfo) bool

	delta         int
	position      int // Leading edge of the item on the axis
	trackPosition int
	index         int
	oldCursor     gui.Cursor
	band          gui.RubberBand
}

// NewColumnsResizer creates a resizer for column widths
func NewColumnsResizer(columns LineSizer, priority Priority) *LinesResizer {
	return newLinesResizer(AxisColumns, columns, priority)
}

// NewRowsResizer creates a resizer for row heights
func NewRowsResizer(rows LineSizer, priority Priority) *LinesResizer {
	return newLinesResizer(AxisRows, rows, priority)
}

func newLinesResizer(axis Axis, lines LineSizer, priority Priority) *LinesResizer {
	r := &LinesResizer{
		axis:  axis,
		lines: lines,
		index: space.InvalidIndex,
	}
	r.Captured = newCaptured(priority, r)
	return r
}

// SetScope restricts the activations the resizer accepts, nil accepts all
func (r *LinesResizer) SetScope(fn func(info ActivationInfo) bool) {
	r.scope = fn
}

// Axis returns the axis the resizer acts on
func (r *LinesResizer) Axis() Axis {
	return r.axis
}

// Index returns the line being resized, InvalidIndex when idle
func (r *LinesResizer) Index() int {
	return r.index
}

// Band returns the drag feedback, nil unless capturing
func (r *LinesResizer) Band() gui.RubberBand {
	return r.band
}

// Size returns the size Apply would commit now
func (r *LinesResizer) Size() int {
	return max(MinLineSize, r.rawSize())
}

// Clamped reports whether the pointer asks for less than MinLineSize
func (r *LinesResizer) Clamped() bool {
	return r.rawSize() < MinLineSize
}

func (r *LinesResizer) rawSize() int {
	return r.trackPosition - r.position + r.delta
}

func (r *LinesResizer) evaluate(info ActivationInfo) Acceptance {
	if info.Cache == nil || r.axis.index(info.Item) == space.InvalidIndex {
		return Acceptance{}
	}
	if r.scope != nil && !r.scope(info) {
		return Acceptance{}
	}
	delta := r.axis.trailing(info.Cache.Rect()) - r.axis.coord(info.Point)
	return Acceptance{
		Accepted: r.axis.withinTolerance(delta),
		Delta:    delta,
	}
}

func (r *LinesResizer) activated(info ActivationInfo, acc Acceptance) {
	r.delta = acc.Delta
	r.position = r.axis.leading(info.ItemRect)
	r.trackPosition = r.axis.coord(info.Point)
	r.index = r.axis.index(info.Item)

	widget := info.Context.Widget
	r.oldCursor = widget.Cursor()
	widget.SetCursor(r.axis.cursor())
	log.Printf("%s resizer: activate line=%d delta=%d cursor %s -> %s", r.axis, r.index, r.delta, r.oldCursor, r.axis.cursor())
}

func (r *LinesResizer) deactivated() {
	r.delta = 0
	r.position = 0
	r.trackPosition = 0
	r.index = space.InvalidIndex
	r.Activation().Context.Widget.SetCursor(r.oldCursor)
	log.Printf("%s resizer: deactivate, cursor restored to %s", r.axis, r.oldCursor)
}

func (r *LinesResizer) capturingStarted() {
	if r.band != nil {
		violate("%s resizer: rubber band already exists", r.axis)
	}
	widget := r.Activation().Context.Widget
	r.band = widget.NewRubberBand()
	r.band.SetGeometry(r.axis.band(widget.Rect(), r.axis.coord(r.Point())))
	r.band.Show()
}

func (r *LinesResizer) capturingStopped() {
	if r.band == nil {
		violate("%s resizer: no rubber band to close", r.axis)
	}
	r.band.Close()
	r.band = nil
}

func (r *LinesResizer) tracked(p space.Point) {
	r.trackPosition = r.axis.coord(p)
	if r.band != nil {
		widget := r.Activation().Context.Widget
		r.band.SetGeometry(r.axis.band(widget.Rect(), r.trackPosition))
	}
}

func (r *LinesResizer) apply() {
	if r.index == space.InvalidIndex {
		violate("%s resizer: apply without a line", r.axis)
	}
	size := r.Size()
	r.lines.SetLineSize(r.index, size)
	log.Printf("%s resizer: line %d resized to %d", r.axis, r.index, size)
}
