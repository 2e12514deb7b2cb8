package host

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridkit/controller"
	"github.com/lixenwraith/gridkit/gui"
	"github.com/lixenwraith/gridkit/space"
)

func newTestGrid(t *testing.T) (*Grid, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(60, 12)
	t.Cleanup(screen.Fini)

	grid := NewGrid(screen, space.NewLines(5, 12), space.NewLines(5, 2), SampleTable(5, 5), DefaultTheme())
	return grid, screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		out = append(out, runeAt(screen, x, y))
	}
	return string(out)
}

func send(g *Grid, x, y int, buttons tcell.ButtonMask) {
	g.HandleEvent(tcell.NewEventMouse(x, y, buttons, tcell.ModNone))
}

func TestGridLayoutBuildsVisibleItems(t *testing.T) {
	g, _ := newTestGrid(t)

	if g.Rect() != space.NewRect(0, 0, 60, 11) {
		t.Errorf("Expected grid above the status line, got %+v", g.Rect())
	}
	cache := g.Cache()
	if len(cache) != 25 {
		t.Fatalf("Expected 25 cache items, got %d", len(cache))
	}
	last := cache[len(cache)-1]
	if last.Item != (space.ItemID{Row: 4, Column: 4}) || last.Rect != space.NewRect(48, 8, 12, 2) {
		t.Errorf("Unexpected last item %v at %+v", last.Item, last.Rect)
	}

	// A wider grid than the screen stops at the right edge
	g.Columns().SetLineSize(0, 40)
	if n := len(g.Cache()); n != 15 {
		t.Errorf("Expected 15 visible items after widening column 0, got %d", n)
	}
}

func TestGridRender(t *testing.T) {
	g, screen := newTestGrid(t)
	g.Render()

	if got := runeAt(screen, 0, 0); got != '▸' {
		t.Errorf("Expected header marker, got %q", got)
	}
	if got := string([]rune(rowText(screen, 0))[2:10]); got != "Column A" {
		t.Errorf("Expected centered header 'Column A', got %q", got)
	}
	if got := runeAt(screen, 11, 0); got != '│' {
		t.Errorf("Expected column separator, got %q", got)
	}
	if got := runeAt(screen, 0, 1); got != '═' {
		t.Errorf("Expected header separator, got %q", got)
	}
	if got := string([]rune(rowText(screen, 2))[20:23]); got != "101" {
		t.Errorf("Expected right aligned '101', got %q", got)
	}
	// Row 3 column 4 holds a negative number
	if got := runeAt(screen, 48, 6); got != '•' {
		t.Errorf("Expected badge on negative value, got %q", got)
	}
}

func TestGridColumnDrag(t *testing.T) {
	g, screen := newTestGrid(t)
	var resized []int
	g.OnResize(func(axis controller.Axis, index, size int, clamped bool) {
		if axis == controller.AxisColumns {
			resized = append(resized, index, size)
		}
	})
	g.Render()

	// Hover the trailing edge of column 0 in the header
	send(g, 11, 0, tcell.ButtonNone)
	if g.Cursor() != gui.CursorSplitH {
		t.Fatalf("Expected SplitH cursor over the header edge, got %s", g.Cursor())
	}

	send(g, 11, 0, tcell.Button1)
	send(g, 16, 4, tcell.Button1)
	send(g, 20, 4, tcell.Button1)
	g.Render()

	if got := runeAt(screen, 20, 7); got != '┃' {
		t.Errorf("Expected rubber band at x=20, got %q", got)
	}
	if status := rowText(screen, 11); !strings.Contains(status, "columns 0 → 20") {
		t.Errorf("Expected live size in the status line, got %q", status)
	}

	send(g, 20, 4, tcell.ButtonNone)

	if g.Columns().LineSize(0) != 20 {
		t.Errorf("Expected column 0 width 20, got %d", g.Columns().LineSize(0))
	}
	if len(resized) != 2 || resized[0] != 0 || resized[1] != 20 {
		t.Errorf("Expected one resize notification (0,20), got %v", resized)
	}
	if g.Cursor() != gui.CursorArrow {
		t.Errorf("Expected cursor restored, got %s", g.Cursor())
	}
	if len(g.bands) != 0 {
		t.Errorf("Expected rubber band closed, %d left", len(g.bands))
	}

	// The next layout pass picks up the new width
	g.Render()
	if got := runeAt(screen, 19, 0); got != '│' {
		t.Errorf("Expected separator moved to x=19, got %q", got)
	}
}

func TestGridRowDrag(t *testing.T) {
	g, _ := newTestGrid(t)
	g.Render()

	// Bottom separator of row 1 in the first column
	send(g, 5, 3, tcell.ButtonNone)
	if g.Cursor() != gui.CursorSplitV {
		t.Fatalf("Expected SplitV cursor, got %s", g.Cursor())
	}
	send(g, 5, 3, tcell.Button1)
	send(g, 5, 9, tcell.Button1)
	send(g, 5, 9, tcell.ButtonNone)

	if g.Rows().LineSize(1) != 7 {
		t.Errorf("Expected row 1 height 7, got %d", g.Rows().LineSize(1))
	}
}

func TestGridRowDragClamps(t *testing.T) {
	g, _ := newTestGrid(t)
	g.Render()

	send(g, 5, 3, tcell.Button1)
	send(g, 5, 0, tcell.Button1)
	send(g, 5, 0, tcell.ButtonNone)

	if g.Rows().LineSize(1) != controller.MinLineSize {
		t.Errorf("Expected row 1 clamped to %d, got %d", controller.MinLineSize, g.Rows().LineSize(1))
	}
}

func TestGridBodyIsNotAResizeHandle(t *testing.T) {
	g, _ := newTestGrid(t)
	g.Render()

	send(g, 23, 4, tcell.ButtonNone)
	if g.Chain().Active() != nil {
		t.Error("Expected no controller active inside the body")
	}
	if g.Cursor() != gui.CursorArrow {
		t.Errorf("Expected arrow cursor, got %s", g.Cursor())
	}
}

func TestGridTooltip(t *testing.T) {
	g, _ := newTestGrid(t)

	// Row 1 column 3 holds a long value; nothing drawn yet
	send(g, 40, 2, tcell.ButtonNone)
	if g.Tooltip() != "" {
		t.Errorf("Expected no tooltip before the first draw, got %q", g.Tooltip())
	}

	g.Render()
	send(g, 40, 2, tcell.ButtonNone)
	if g.Tooltip() != "long value at row 1 column 3" {
		t.Errorf("Expected tooltip with the full value, got %q", g.Tooltip())
	}

	// Short value, no truncation
	send(g, 20, 2, tcell.ButtonNone)
	if g.Tooltip() != "" {
		t.Errorf("Expected no tooltip for a value that fits, got %q", g.Tooltip())
	}
}

func TestGridCopyOnRightClick(t *testing.T) {
	g, _ := newTestGrid(t)
	var copied []string
	g.SetCopier(func(s string) error {
		copied = append(copied, s)
		return nil
	})

	send(g, 20, 2, tcell.Button2)
	send(g, 20, 2, tcell.ButtonNone)

	if len(copied) != 1 || copied[0] != "101" {
		t.Errorf("Expected '101' copied, got %v", copied)
	}
	if g.Message() != "copied (1,1)" {
		t.Errorf("Expected copy message, got %q", g.Message())
	}

	g.SetCopier(func(string) error { return errors.New("no clipboard") })
	send(g, 20, 2, tcell.Button2)
	if !strings.Contains(g.Message(), "no clipboard") {
		t.Errorf("Expected copy failure in message, got %q", g.Message())
	}
}

func TestGridResizeAbortsGesture(t *testing.T) {
	g, _ := newTestGrid(t)
	g.Render()

	send(g, 11, 0, tcell.Button1)
	send(g, 30, 0, tcell.Button1)
	if g.Chain().Active() == nil || !g.Chain().Active().IsCapturing() {
		t.Fatal("Expected a captured gesture")
	}

	g.HandleEvent(tcell.NewEventResize(80, 20))

	if g.Chain().Active() != nil {
		t.Error("Expected gesture aborted by the resize")
	}
	if len(g.bands) != 0 {
		t.Errorf("Expected band closed, %d left", len(g.bands))
	}
	if g.Cursor() != gui.CursorArrow {
		t.Errorf("Expected cursor restored, got %s", g.Cursor())
	}
	if g.Columns().LineSize(0) != 12 {
		t.Errorf("Expected column 0 untouched, got %d", g.Columns().LineSize(0))
	}
	if g.Rect() != space.NewRect(0, 0, 80, 19) {
		t.Errorf("Expected grid resized, got %+v", g.Rect())
	}

	// A stray release after the abort does nothing
	send(g, 30, 0, tcell.ButtonNone)
	if g.Columns().LineSize(0) != 12 {
		t.Errorf("Expected column 0 untouched after stray release, got %d", g.Columns().LineSize(0))
	}
}

func TestGridPlainClickKeepsSizes(t *testing.T) {
	g, _ := newTestGrid(t)
	g.Render()

	clicks := []struct {
		name string
		x, y int
	}{
		{"first column body text", 5, 4},
		{"header text near the separator", 8, 0},
		{"header marker", 0, 0},
	}
	for _, c := range clicks {
		send(g, c.x, c.y, tcell.ButtonNone)
		send(g, c.x, c.y, tcell.Button1)
		send(g, c.x, c.y, tcell.ButtonNone)
		if g.Chain().Active() != nil {
			t.Errorf("%s: expected no resizer under the pointer", c.name)
		}
	}

	for i, size := range g.Columns().Sizes() {
		if size != 12 {
			t.Errorf("Expected column %d width 12, got %d", i, size)
		}
	}
	for i, size := range g.Rows().Sizes() {
		if size != 2 {
			t.Errorf("Expected row %d height 2, got %d", i, size)
		}
	}
}

func TestGridResizeReportsClamping(t *testing.T) {
	g, _ := newTestGrid(t)
	var clamps []bool
	g.OnResize(func(axis controller.Axis, index, size int, clamped bool) {
		clamps = append(clamps, clamped)
	})
	g.Render()

	// Row 1 starts at y=2: y=7 asks for exactly the minimum
	send(g, 5, 3, tcell.Button1)
	send(g, 5, 7, tcell.Button1)
	send(g, 5, 7, tcell.ButtonNone)
	if g.Rows().LineSize(1) != controller.MinLineSize {
		t.Fatalf("Expected row 1 height %d, got %d", controller.MinLineSize, g.Rows().LineSize(1))
	}

	// Row 2 now starts at y=7, its bottom separator is at y=8
	g.Render()
	send(g, 5, 8, tcell.Button1)
	send(g, 5, 1, tcell.Button1)
	send(g, 5, 1, tcell.ButtonNone)

	if len(clamps) != 2 || clamps[0] || !clamps[1] {
		t.Errorf("Expected clamping reported only for the second drag, got %v", clamps)
	}
}

func TestGridCancelIgnoresHeldButton(t *testing.T) {
	g, _ := newTestGrid(t)
	g.Render()

	send(g, 11, 0, tcell.Button1)
	send(g, 25, 0, tcell.Button1)
	g.Cancel()

	// Still dragging with the button down, now over the edge of column 2
	send(g, 35, 0, tcell.Button1)
	if active := g.Chain().Active(); active != nil && active.IsCapturing() {
		t.Error("Expected no new capture while the aborted drag continues")
	}
	if len(g.bands) != 0 {
		t.Errorf("Expected no rubber band, %d open", len(g.bands))
	}
	send(g, 35, 0, tcell.ButtonNone)

	for i, size := range g.Columns().Sizes() {
		if size != 12 {
			t.Errorf("Expected column %d width 12, got %d", i, size)
		}
	}
}
