package view

import (
	"github.com/lixenwraith/gridkit/gui"
	"github.com/lixenwraith/gridkit/space"
)

// View draws one region of a grid item
type View interface {
	// Draw renders the region and reports whether a tooltip should be offered
	// for what was drawn
	Draw(s *Surface, ctx gui.Context, cc CacheContext) (showTooltip bool)
	// CleanupDraw releases anything Draw acquired; called once per Draw
	CleanupDraw(s *Surface, ctx gui.Context, cc CacheContext)
	// TooltipText returns the tooltip for item, if the view has one
	TooltipText(item space.ItemID) (string, bool)
}

// Layout places a view inside the space still free in an item
type Layout interface {
	// IsFloat reports whether the region overlays its neighbours
	IsFloat() bool
	// Arrange returns the region for the view and shrinks avail by what it consumed
	Arrange(avail *space.Rect) space.Rect
}

// Container is implemented by views composed of nested regions
type Container interface {
	Schemas() []Schema
}

// Schema pairs a layout with the view it places
type Schema struct {
	Layout Layout
	View   View
}

// CacheContext is the read-only view of a cache entry handed to View calls
type CacheContext struct {
	Item     space.ItemID
	ItemRect space.Rect
	Cache    *CacheView
	Visible  *space.Rect // nil when the whole item is visible
}

// Rect returns the region of the entry being drawn
func (cc CacheContext) Rect() space.Rect {
	return cc.Cache.Rect()
}

// Clip returns s restricted to the entry's region and the visible rect
func (cc CacheContext) Clip(s *Surface) *Surface {
	clipped := s.WithClip(cc.Rect())
	if cc.Visible != nil {
		clipped = clipped.WithClip(*cc.Visible)
	}
	return clipped
}
