package host

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridkit/controller"
	"github.com/lixenwraith/gridkit/gui"
	"github.com/lixenwraith/gridkit/space"
	"github.com/lixenwraith/gridkit/view"
)

// statusHeight is the number of screen rows below the grid
const statusHeight = 1

// ResizeListener is told about committed line sizes; clamped is set when the
// drag asked for less than controller.MinLineSize
type ResizeListener func(axis controller.Axis, index, size int, clamped bool)

// Grid is a tcell widget drawing a model through the view cache and routing
// the mouse through the controller chain
type Grid struct {
	screen  tcell.Screen
	rect    space.Rect
	columns *space.Lines
	rows    *space.Lines
	model   Model
	theme   Theme

	headerSchemas []view.Schema
	bodySchemas   []view.Schema

	// Rebuilt whenever lines or the widget rect change
	cache []view.CacheItem
	dirty bool

	chain   *controller.Chain
	tracker PointerTracker
	cursor  gui.Cursor
	bands   []*rubberBand

	pointer  space.Point
	tooltip  string
	message  string
	copier   func(string) error
	onResize ResizeListener
}

// NewGrid creates a grid filling screen above the status line
func NewGrid(screen tcell.Screen, columns, rows *space.Lines, model Model, theme Theme) *Grid {
	g := &Grid{
		screen:  screen,
		columns: columns,
		rows:    rows,
		model:   model,
		theme:   theme,
		dirty:   true,
		cursor:  gui.CursorArrow,
	}

	w, h := screen.Size()
	g.rect = space.NewRect(0, 0, w, h-statusHeight)

	g.headerSchemas, g.bodySchemas = g.defaultSchemas()

	// Columns are resized from the header separators, rows from the
	// separators of the first column
	colResizer := controller.NewColumnsResizer(columns, controller.PriorityOverlay)
	colResizer.SetScope(func(info controller.ActivationInfo) bool {
		return info.Item.Row == 0 && controller.AxisColumns.OnEdge(info)
	})
	rowResizer := controller.NewRowsResizer(rows, controller.PriorityOverlay)
	rowResizer.SetScope(func(info controller.ActivationInfo) bool {
		return info.Item.Column == 0 && controller.AxisRows.OnEdge(info)
	})
	g.chain = controller.NewChain(colResizer, rowResizer)

	columns.OnChange(func(index, size int) { g.linesChanged(controller.AxisColumns, index, size) })
	rows.OnChange(func(index, size int) { g.linesChanged(controller.AxisRows, index, size) })

	return g
}

func (g *Grid) defaultSchemas() (header, body []view.Schema) {
	text := g.model.Text
	var flag func(space.ItemID) bool
	if f, ok := g.model.(Flagger); ok {
		flag = f.Flagged
	}

	header = []view.Schema{
		{Layout: view.Right(1), View: view.Separator{Rune: '│', Style: g.theme.Separator}},
		{Layout: view.Bottom(1), View: view.Separator{Rune: '═', Style: g.theme.Separator}},
		{Layout: view.Fill(), View: &view.Composite{Items: []view.Schema{
			{Layout: view.Left(1), View: view.Separator{Rune: '▸', Style: g.theme.Header}},
			{Layout: view.Fill(), View: &view.Text{Source: text, Style: g.theme.Header, Align: view.AlignCenter}},
		}}},
	}
	body = []view.Schema{
		{Layout: view.Right(1), View: view.Separator{Rune: '│', Style: g.theme.Separator}},
		{Layout: view.Bottom(1), View: view.Separator{Rune: '─', Style: g.theme.Separator}},
		{Layout: view.Float(view.Left(1)), View: &view.Badge{Rune: '•', Style: g.theme.Badge, Flag: flag, Hint: "negative value"}},
		{Layout: view.Fill(), View: &view.Text{Source: text, Style: g.theme.Cell, Align: view.AlignRight, Pad: 1}},
	}
	return header, body
}

// SetSchemas replaces the header and body schemas and invalidates the cache
func (g *Grid) SetSchemas(header, body []view.Schema) {
	g.headerSchemas = header
	g.bodySchemas = body
	g.invalidate()
}

// SetCopier sets the function used to copy cell text on right click
func (g *Grid) SetCopier(fn func(string) error) {
	g.copier = fn
}

// OnResize sets the listener for committed line sizes
func (g *Grid) OnResize(fn ResizeListener) {
	g.onResize = fn
}

// Chain returns the controller chain
func (g *Grid) Chain() *controller.Chain {
	return g.chain
}

// Columns returns the column widths
func (g *Grid) Columns() *space.Lines { return g.columns }

// Rows returns the row heights
func (g *Grid) Rows() *space.Lines { return g.rows }

// Model returns the grid's model
func (g *Grid) Model() Model { return g.model }

// Rect returns the grid area
func (g *Grid) Rect() space.Rect {
	return g.rect
}

// Cursor returns the requested pointer shape
func (g *Grid) Cursor() gui.Cursor {
	return g.cursor
}

// SetCursor changes the pointer shape shown in the status line
func (g *Grid) SetCursor(c gui.Cursor) {
	g.cursor = c
}

// NewRubberBand creates a hidden band drawn over the grid until closed
func (g *Grid) NewRubberBand() gui.RubberBand {
	b := &rubberBand{grid: g}
	g.bands = append(g.bands, b)
	return b
}

func (g *Grid) removeBand(b *rubberBand) {
	for i, other := range g.bands {
		if other == b {
			g.bands = append(g.bands[:i], g.bands[i+1:]...)
			return
		}
	}
}

// Tooltip returns the tooltip of the item under the pointer
func (g *Grid) Tooltip() string {
	return g.tooltip
}

// SetMessage shows msg in the status line until the next message
func (g *Grid) SetMessage(msg string) {
	g.message = msg
}

// Message returns the current status message
func (g *Grid) Message() string {
	return g.message
}

// Cache returns the cache items of the current layout pass
func (g *Grid) Cache() []view.CacheItem {
	g.ensureLayout()
	return g.cache
}

func (g *Grid) linesChanged(axis controller.Axis, index, size int) {
	g.invalidate()
	if g.onResize == nil {
		return
	}
	clamped := false
	if r, ok := g.chain.Active().(*controller.LinesResizer); ok && r.IsActive() && r.Axis() == axis {
		clamped = r.Clamped()
	}
	g.onResize(axis, index, size, clamped)
}

func (g *Grid) invalidate() {
	g.dirty = true
}

func (g *Grid) ensureLayout() {
	if g.dirty {
		g.layout()
	}
}

// layout builds one cache item per visible grid item
func (g *Grid) layout() {
	g.cache = g.cache[:0]
	y := g.rect.Y
	for r := 0; r < g.rows.Count() && y < g.rect.Y+g.rect.H; r++ {
		h := g.rows.LineSize(r)
		x := g.rect.X
		for c := 0; c < g.columns.Count() && x < g.rect.X+g.rect.W; c++ {
			w := g.columns.LineSize(c)
			item := space.ItemID{Row: r, Column: c}
			schemas := g.bodySchemas
			if r == 0 {
				schemas = g.headerSchemas
			}
			g.cache = append(g.cache, view.NewCacheItem(item, space.NewRect(x, y, w, h), schemas))
			x += w
		}
		y += h
	}
	g.dirty = false
}

// ItemAt returns the cache item under p, nil when none
func (g *Grid) ItemAt(p space.Point) *view.CacheItem {
	g.ensureLayout()
	if !g.rect.Contains(p) {
		return nil
	}
	for i := range g.cache {
		if g.cache[i].Rect.Contains(p) {
			return &g.cache[i]
		}
	}
	return nil
}

func (g *Grid) probe(ctx gui.Context) controller.Probe {
	return func(p space.Point) (controller.ActivationInfo, bool) {
		ci := g.ItemAt(p)
		if ci == nil {
			return controller.ActivationInfo{}, false
		}
		cv := ci.ViewAt(p)
		if cv == nil {
			return controller.ActivationInfo{}, false
		}
		return controller.ActivationInfo{
			Point:    p,
			Item:     ci.Item,
			ItemRect: ci.Rect,
			Cache:    cv,
			Context:  ctx,
		}, true
	}
}

// Resize fits the grid to a new screen size, aborting any gesture
func (g *Grid) Resize(w, h int) {
	g.Cancel()
	g.rect = space.NewRect(0, 0, w, h-statusHeight)
	g.invalidate()
}

// Cancel aborts the gesture in progress and restores cursor and feedback.
// Held buttons stay tracked so a drag continuing after the abort is not
// taken for a new press.
func (g *Grid) Cancel() {
	g.chain.Cancel()
}

// HandleEvent processes mouse and resize events, returns whether ev was used
func (g *Grid) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		g.handleMouse(ev)
		return true
	case *tcell.EventResize:
		w, h := ev.Size()
		g.Resize(w, h)
		return true
	}
	return false
}

func (g *Grid) handleMouse(ev *tcell.EventMouse) {
	pe := g.tracker.Track(ev)
	p := pe.Point
	g.pointer = p
	probe := g.probe(gui.Context{Widget: g, Event: ev})

	switch pe.Action {
	case PointerPress:
		if pe.Button&tcell.Button1 != 0 {
			g.chain.PointerPress(p, probe)
		} else if pe.Button&tcell.Button2 != 0 {
			g.copyAt(p)
		}
	case PointerMove, PointerDrag:
		g.chain.PointerMove(p, probe)
	case PointerRelease:
		if pe.Button&tcell.Button1 != 0 {
			g.chain.PointerRelease(p)
		}
	}

	g.tooltip = ""
	if g.chain.Active() == nil {
		if ci := g.ItemAt(p); ci != nil {
			if text, ok := ci.TooltipText(p); ok {
				g.tooltip = text
			}
		}
	}
}

func (g *Grid) copyAt(p space.Point) {
	ci := g.ItemAt(p)
	if ci == nil || g.copier == nil {
		return
	}
	text := g.model.Text(ci.Item)
	if err := g.copier(text); err != nil {
		log.Printf("grid: copy %s failed: %v", ci.Item, err)
		g.message = fmt.Sprintf("copy failed: %v", err)
		return
	}
	g.message = fmt.Sprintf("copied %s", ci.Item)
}

// Render draws the grid, the drag feedback and the status line, then shows the screen
func (g *Grid) Render() {
	g.ensureLayout()
	g.screen.Clear()

	surface := view.NewSurface(g.screen, g.rect)
	ctx := gui.Context{Widget: g}
	for i := range g.cache {
		ci := &g.cache[i]
		var visible *space.Rect
		if clipped := ci.Rect.Intersect(g.rect); clipped != ci.Rect {
			visible = &clipped
		}
		ci.Draw(surface, ctx, visible)
	}

	for _, b := range g.bands {
		b.draw(g.screen, g.theme.Band)
	}

	g.drawStatus()
	g.screen.Show()
}

func (g *Grid) drawStatus() {
	w, h := g.screen.Size()
	status := view.NewSurface(g.screen, space.NewRect(0, h-statusHeight, w, statusHeight))
	status.Fill(status.Clip(), g.theme.Status)

	text := fmt.Sprintf(" %3d,%-3d %-6s", g.pointer.X, g.pointer.Y, g.cursor)
	if r, ok := g.chain.Active().(*controller.LinesResizer); ok && r.IsCapturing() {
		text += fmt.Sprintf(" │ %s %d → %d", r.Axis(), r.Index(), r.Size())
	} else if g.tooltip != "" {
		text += " │ " + g.tooltip
	}
	if g.message != "" {
		text += " │ " + g.message
	}
	status.Text(0, h-statusHeight, text, g.theme.Status)
}
