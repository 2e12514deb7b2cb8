package view

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gridkit/gui"
	"github.com/lixenwraith/gridkit/space"
)

// ErrUnbound is raised when a cache entry without layout or view is used
var ErrUnbound = errors.New("view: unbound cache entry")

// CacheView records which layout and view own one screen region of an item
//
// Layout and view are borrowed: they belong to the grid's schema and must
// outlive the entry. The zero value only exists so entries can live in slices;
// every method panics on it.
type CacheView struct {
	layout Layout
	view   View
	rect   space.Rect

	// Set by the most recent Draw
	showTooltip bool

	subViews []CacheView
}

// NewCacheView binds layout and view to rect, panics if either is nil
func NewCacheView(layout Layout, view View, rect space.Rect) CacheView {
	if layout == nil {
		panic(fmt.Errorf("%w: nil layout", ErrUnbound))
	}
	if view == nil {
		panic(fmt.Errorf("%w: nil view", ErrUnbound))
	}
	return CacheView{
		layout: layout,
		view:   view,
		rect:   rect,
	}
}

func (c *CacheView) mustBeBound() {
	if c.layout == nil || c.view == nil {
		panic(ErrUnbound)
	}
}

// Layout returns the bound layout
func (c *CacheView) Layout() Layout {
	c.mustBeBound()
	return c.layout
}

// View returns the bound view
func (c *CacheView) View() View {
	c.mustBeBound()
	return c.view
}

// Rect returns the screen region of the entry
func (c *CacheView) Rect() space.Rect {
	c.mustBeBound()
	return c.rect
}

// IsFloat reports whether the entry overlays its neighbours
func (c *CacheView) IsFloat() bool {
	c.mustBeBound()
	return c.layout.IsFloat()
}

// SubViews returns the nested entries; the slice aliases the entry's storage
func (c *CacheView) SubViews() []CacheView {
	c.mustBeBound()
	return c.subViews
}

// Clone returns a copy with its own nested entries
func (c *CacheView) Clone() CacheView {
	c.mustBeBound()
	out := *c
	if c.subViews != nil {
		out.subViews = make([]CacheView, len(c.subViews))
		for i := range c.subViews {
			out.subViews[i] = c.subViews[i].Clone()
		}
	}
	return out
}

// Reset forgets the tooltip decision of the last draw
func (c *CacheView) Reset() {
	c.mustBeBound()
	c.showTooltip = false
	for i := range c.subViews {
		c.subViews[i].Reset()
	}
}

// Draw renders the entry through its view and records tooltip eligibility
// Floating entries must be excluded from the clip of later regions by the caller
func (c *CacheView) Draw(s *Surface, ctx gui.Context, item space.ItemID, itemRect space.Rect, visible *space.Rect) {
	c.mustBeBound()
	// Cleared first so a panicking view leaves no stale tooltip
	c.showTooltip = false
	c.showTooltip = c.view.Draw(s, ctx, c.context(item, itemRect, visible))
}

// CleanupDraw lets the view release what Draw acquired
func (c *CacheView) CleanupDraw(s *Surface, ctx gui.Context, item space.ItemID, itemRect space.Rect, visible *space.Rect) {
	c.mustBeBound()
	c.view.CleanupDraw(s, ctx, c.context(item, itemRect, visible))
}

// TooltipText returns a tooltip only if the latest Draw asked for one
// Nested entries that asked for a tooltip are consulted before the entry's own view
func (c *CacheView) TooltipText(item space.ItemID) (string, bool) {
	c.mustBeBound()
	if !c.showTooltip {
		return "", false
	}
	for i := range c.subViews {
		if text, ok := c.subViews[i].TooltipText(item); ok {
			return text, true
		}
	}
	return c.view.TooltipText(item)
}

func (c *CacheView) context(item space.ItemID, itemRect space.Rect, visible *space.Rect) CacheContext {
	return CacheContext{
		Item:     item,
		ItemRect: itemRect,
		Cache:    c,
		Visible:  visible,
	}
}
