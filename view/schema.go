package view

import (
	"github.com/lixenwraith/gridkit/gui"
	"github.com/lixenwraith/gridkit/space"
)

// Build runs the layouts of schemas over rect and returns one entry per
// non-empty region. Container views get their nested entries built inside
// their own region.
func Build(schemas []Schema, rect space.Rect) []CacheView {
	avail := rect
	views := make([]CacheView, 0, len(schemas))
	for _, sc := range schemas {
		if sc.Layout == nil || sc.View == nil {
			// Surface the bad schema at build time
			NewCacheView(sc.Layout, sc.View, rect)
		}
		r := sc.Layout.Arrange(&avail)
		if r.Empty() {
			continue
		}
		cv := NewCacheView(sc.Layout, sc.View, r)
		if c, ok := sc.View.(Container); ok {
			cv.subViews = Build(c.Schemas(), r)
		}
		views = append(views, cv)
	}
	return views
}

// CacheItem holds every cache entry of one grid item for one layout pass
type CacheItem struct {
	Item  space.ItemID
	Rect  space.Rect
	Views []CacheView
}

// NewCacheItem builds the entries of item inside rect
func NewCacheItem(item space.ItemID, rect space.Rect, schemas []Schema) CacheItem {
	return CacheItem{
		Item:  item,
		Rect:  rect,
		Views: Build(schemas, rect),
	}
}

// Draw renders the entries in order. Floating entries are excluded from s after
// drawing. Every entry whose Draw was entered gets its CleanupDraw, also when a
// view panics half way.
func (ci *CacheItem) Draw(s *Surface, ctx gui.Context, visible *space.Rect) {
	drawn := 0
	defer func() {
		for i := 0; i < drawn; i++ {
			ci.Views[i].CleanupDraw(s, ctx, ci.Item, ci.Rect, visible)
		}
	}()

	for i := range ci.Views {
		cv := &ci.Views[i]
		drawn = i + 1
		cv.Draw(s, ctx, ci.Item, ci.Rect, visible)
		if cv.IsFloat() {
			s.Exclude(cv.Rect())
		}
	}
}

// ViewAt returns the entry under p; floating entries win over the regions
// they overlay
func (ci *CacheItem) ViewAt(p space.Point) *CacheView {
	for i := range ci.Views {
		if ci.Views[i].IsFloat() && ci.Views[i].Rect().Contains(p) {
			return &ci.Views[i]
		}
	}
	for i := len(ci.Views) - 1; i >= 0; i-- {
		if ci.Views[i].Rect().Contains(p) {
			return &ci.Views[i]
		}
	}
	return nil
}

// TooltipText returns the tooltip of the entry under p
func (ci *CacheItem) TooltipText(p space.Point) (string, bool) {
	cv := ci.ViewAt(p)
	if cv == nil {
		return "", false
	}
	return cv.TooltipText(ci.Item)
}
