package controller

import (
	"errors"
	"testing"

	"github.com/lixenwraith/gridkit/gui"
	"github.com/lixenwraith/gridkit/space"
	"github.com/lixenwraith/gridkit/view"
)

type fakeBand struct {
	geometry space.Rect
	moves    int
	shown    bool
	closed   bool
}

func (b *fakeBand) SetGeometry(r space.Rect) { b.geometry = r; b.moves++ }
func (b *fakeBand) Geometry() space.Rect     { return b.geometry }
func (b *fakeBand) Show()                    { b.shown = true }
func (b *fakeBand) Close()                   { b.closed = true }

type fakeWidget struct {
	rect   space.Rect
	cursor gui.Cursor
	bands  []*fakeBand
}

func newFakeWidget() *fakeWidget {
	return &fakeWidget{rect: space.NewRect(0, 0, 200, 80), cursor: gui.CursorHand}
}

func (w *fakeWidget) Rect() space.Rect       { return w.rect }
func (w *fakeWidget) Cursor() gui.Cursor     { return w.cursor }
func (w *fakeWidget) SetCursor(c gui.Cursor) { w.cursor = c }
func (w *fakeWidget) NewRubberBand() gui.RubberBand {
	b := &fakeBand{}
	w.bands = append(w.bands, b)
	return b
}

func (w *fakeWidget) openBands() int {
	n := 0
	for _, b := range w.bands {
		if !b.closed {
			n++
		}
	}
	return n
}

type lineSet struct {
	index, size int
}

type recordingLines struct {
	sets []lineSet
}

func (l *recordingLines) SetLineSize(index, size int) {
	l.sets = append(l.sets, lineSet{index, size})
}

// activationAt builds the info for item occupying rect with the pointer at p
func activationAt(w gui.Widget, item space.ItemID, rect space.Rect, p space.Point) ActivationInfo {
	cv := view.NewCacheView(view.Fill(), view.Background{}, rect)
	return ActivationInfo{
		Point:    p,
		Item:     item,
		ItemRect: rect,
		Cache:    &cv,
		Context:  gui.Context{Widget: w},
	}
}

func expectViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected precondition violation")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPrecondition) {
			t.Fatalf("Expected ErrPrecondition, got %v", r)
		}
	}()
	fn()
}
