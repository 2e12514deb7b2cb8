package view

import (
	"errors"
	"testing"

	"github.com/lixenwraith/gridkit/gui"
	"github.com/lixenwraith/gridkit/space"
)

// recordingView counts calls and returns a configurable tooltip decision
type recordingView struct {
	show     bool
	tooltip  string
	draws    int
	cleanups int
	lastCtx  CacheContext
	panicked bool
}

func (v *recordingView) Draw(s *Surface, ctx gui.Context, cc CacheContext) bool {
	v.draws++
	v.lastCtx = cc
	if v.panicked {
		panic("draw failed")
	}
	return v.show
}

func (v *recordingView) CleanupDraw(s *Surface, ctx gui.Context, cc CacheContext) {
	v.cleanups++
}

func (v *recordingView) TooltipText(item space.ItemID) (string, bool) {
	return v.tooltip, v.tooltip != ""
}

func expectPanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("Expected panic wrapping %v, got %v", target, r)
		}
	}()
	fn()
}

func TestNewCacheViewRequiresLayoutAndView(t *testing.T) {
	expectPanicIs(t, ErrUnbound, func() {
		NewCacheView(nil, &recordingView{}, space.NewRect(0, 0, 1, 1))
	})
	expectPanicIs(t, ErrUnbound, func() {
		NewCacheView(Fill(), nil, space.NewRect(0, 0, 1, 1))
	})
}

func TestZeroCacheViewIsNotUsable(t *testing.T) {
	var cv CacheView
	expectPanicIs(t, ErrUnbound, func() {
		cv.Rect()
	})
	expectPanicIs(t, ErrUnbound, func() {
		cv.TooltipText(space.ItemID{})
	})
}

func TestTooltipFreshness(t *testing.T) {
	v := &recordingView{show: true, tooltip: "full text"}
	cv := NewCacheView(Fill(), v, space.NewRect(0, 0, 10, 1))
	item := space.ItemID{Row: 1, Column: 2}

	// Never drawn: no tooltip, even though the view has one
	if _, ok := cv.TooltipText(item); ok {
		t.Error("Expected no tooltip before first draw")
	}

	cv.Draw(nil, gui.Context{}, item, space.NewRect(0, 0, 10, 1), nil)
	text, ok := cv.TooltipText(item)
	if !ok || text != "full text" {
		t.Errorf("Expected tooltip 'full text' after eligible draw, got %q (%v)", text, ok)
	}

	// Latest draw declined
	v.show = false
	cv.Draw(nil, gui.Context{}, item, space.NewRect(0, 0, 10, 1), nil)
	if _, ok := cv.TooltipText(item); ok {
		t.Error("Expected no tooltip after a draw that declined it")
	}

	v.show = true
	cv.Draw(nil, gui.Context{}, item, space.NewRect(0, 0, 10, 1), nil)
	cv.Reset()
	if _, ok := cv.TooltipText(item); ok {
		t.Error("Expected no tooltip after Reset")
	}
}

func TestDrawPassesContext(t *testing.T) {
	v := &recordingView{}
	rect := space.NewRect(3, 4, 5, 1)
	cv := NewCacheView(Fill(), v, rect)
	item := space.ItemID{Row: 7, Column: 8}
	itemRect := space.NewRect(0, 4, 10, 1)
	visible := space.NewRect(0, 0, 6, 6)

	cv.Draw(nil, gui.Context{}, item, itemRect, &visible)

	if v.draws != 1 {
		t.Fatalf("Expected 1 draw, got %d", v.draws)
	}
	cc := v.lastCtx
	if cc.Item != item {
		t.Errorf("Expected item %v, got %v", item, cc.Item)
	}
	if cc.ItemRect != itemRect {
		t.Errorf("Expected item rect %+v, got %+v", itemRect, cc.ItemRect)
	}
	if cc.Cache != &cv {
		t.Error("Expected context to reference the drawing entry")
	}
	if cc.Rect() != rect {
		t.Errorf("Expected entry rect %+v, got %+v", rect, cc.Rect())
	}
	if cc.Visible == nil || *cc.Visible != visible {
		t.Errorf("Expected visible rect %+v, got %v", visible, cc.Visible)
	}

	cv.CleanupDraw(nil, gui.Context{}, item, itemRect, &visible)
	if v.cleanups != 1 {
		t.Errorf("Expected 1 cleanup, got %d", v.cleanups)
	}
}

func TestPanickingDrawLeavesNoTooltip(t *testing.T) {
	v := &recordingView{show: true, tooltip: "x"}
	cv := NewCacheView(Fill(), v, space.NewRect(0, 0, 1, 1))
	cv.Draw(nil, gui.Context{}, space.ItemID{}, space.NewRect(0, 0, 1, 1), nil)

	v.panicked = true
	func() {
		defer func() { recover() }()
		cv.Draw(nil, gui.Context{}, space.ItemID{}, space.NewRect(0, 0, 1, 1), nil)
	}()

	if _, ok := cv.TooltipText(space.ItemID{}); ok {
		t.Error("Expected tooltip flag cleared by the failed draw")
	}
}

func TestCloneCopiesSubViews(t *testing.T) {
	inner := &recordingView{show: true, tooltip: "inner"}
	composite := &Composite{Items: []Schema{{Layout: Fill(), View: inner}}}
	views := Build([]Schema{{Layout: Fill(), View: composite}}, space.NewRect(0, 0, 4, 1))
	if len(views) != 1 || len(views[0].SubViews()) != 1 {
		t.Fatalf("Expected one composite entry with one sub entry, got %d", len(views))
	}

	orig := views[0]
	orig.Draw(nil, gui.Context{}, space.ItemID{}, space.NewRect(0, 0, 4, 1), nil)

	clone := orig.Clone()
	clone.Reset()

	if _, ok := orig.TooltipText(space.ItemID{}); !ok {
		t.Error("Expected resetting the clone to leave the original's sub entries untouched")
	}

	// Plain assignment shares sub entries
	shallow := orig
	shallow.SubViews()[0].Reset()
	if orig.SubViews()[0].showTooltip {
		t.Error("Expected shallow copy to share sub entry storage")
	}
}
