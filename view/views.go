package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridkit/gui"
	"github.com/lixenwraith/gridkit/space"
)

// Align specifies text alignment within a region
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Ellipsis is appended to truncated text
const Ellipsis = "…"

// Text paints its region in Style and draws the item's text on the first row.
// It offers a tooltip with the full text whenever the text had to be truncated.
type Text struct {
	Source func(item space.ItemID) string
	Align  Align
	Style  tcell.Style
	Pad    int // Blank columns before the text
}

func (t *Text) text(item space.ItemID) string {
	if t.Source == nil {
		return ""
	}
	return t.Source(item)
}

// Draw paints the text and reports whether it was truncated
func (t *Text) Draw(s *Surface, ctx gui.Context, cc CacheContext) bool {
	r := cc.Rect()
	clip := cc.Clip(s)
	clip.Fill(r, t.Style)

	text := t.text(cc.Item)
	if text == "" {
		return false
	}

	width := r.W - t.Pad
	if width <= 0 {
		return true
	}

	shown := text
	truncated := runewidth.StringWidth(text) > width
	if truncated {
		shown = runewidth.Truncate(text, width, Ellipsis)
	}

	x := r.X + t.Pad
	switch t.Align {
	case AlignRight:
		x += width - runewidth.StringWidth(shown)
	case AlignCenter:
		x += (width - runewidth.StringWidth(shown)) / 2
	}

	clip.Text(x, r.Y, shown, t.Style)
	return truncated
}

// CleanupDraw has nothing to release
func (t *Text) CleanupDraw(s *Surface, ctx gui.Context, cc CacheContext) {}

// TooltipText returns the full text
func (t *Text) TooltipText(item space.ItemID) (string, bool) {
	text := t.text(item)
	return text, text != ""
}

// Background fills its region
type Background struct {
	Style tcell.Style
}

// Draw fills the region, it never asks for a tooltip
func (b Background) Draw(s *Surface, ctx gui.Context, cc CacheContext) bool {
	cc.Clip(s).Fill(cc.Rect(), b.Style)
	return false
}

// CleanupDraw has nothing to release
func (b Background) CleanupDraw(s *Surface, ctx gui.Context, cc CacheContext) {}

// TooltipText is always empty
func (b Background) TooltipText(item space.ItemID) (string, bool) { return "", false }

// Separator fills its region with a line glyph, used for column and row edges
type Separator struct {
	Rune  rune
	Style tcell.Style
}

// Draw fills the region with the glyph
func (sp Separator) Draw(s *Surface, ctx gui.Context, cc CacheContext) bool {
	cc.Clip(s).FillRune(cc.Rect(), sp.Rune, sp.Style)
	return false
}

// CleanupDraw has nothing to release
func (sp Separator) CleanupDraw(s *Surface, ctx gui.Context, cc CacheContext) {}

// TooltipText is always empty
func (sp Separator) TooltipText(item space.ItemID) (string, bool) { return "", false }

// Badge marks flagged items with a glyph in the top-left cell of its region
type Badge struct {
	Rune  rune
	Style tcell.Style
	Flag  func(item space.ItemID) bool
	Hint  string // Tooltip for flagged items
}

func (b *Badge) flagged(item space.ItemID) bool {
	return b.Flag != nil && b.Flag(item)
}

// Draw marks flagged items, a tooltip is offered when Hint is set
func (b *Badge) Draw(s *Surface, ctx gui.Context, cc CacheContext) bool {
	if !b.flagged(cc.Item) {
		return false
	}
	r := cc.Rect()
	cc.Clip(s).SetCell(r.X, r.Y, b.Rune, b.Style)
	return b.Hint != ""
}

// CleanupDraw has nothing to release
func (b *Badge) CleanupDraw(s *Surface, ctx gui.Context, cc CacheContext) {}

// TooltipText returns Hint for flagged items
func (b *Badge) TooltipText(item space.ItemID) (string, bool) {
	if !b.flagged(item) || b.Hint == "" {
		return "", false
	}
	return b.Hint, true
}

// Composite lays out nested schemas inside its region
type Composite struct {
	Items []Schema
}

// Schemas returns the nested schemas
func (c *Composite) Schemas() []Schema {
	return c.Items
}

// Draw renders the nested entries and asks for a tooltip if any of them did
func (c *Composite) Draw(s *Surface, ctx gui.Context, cc CacheContext) bool {
	show := false
	subs := cc.Cache.SubViews()
	for i := range subs {
		sub := &subs[i]
		sub.Draw(s, ctx, cc.Item, cc.ItemRect, cc.Visible)
		if sub.IsFloat() {
			s.Exclude(sub.Rect())
		}
		show = show || sub.showTooltip
	}
	return show
}

// CleanupDraw forwards to the nested entries
func (c *Composite) CleanupDraw(s *Surface, ctx gui.Context, cc CacheContext) {
	subs := cc.Cache.SubViews()
	for i := range subs {
		subs[i].CleanupDraw(s, ctx, cc.Item, cc.ItemRect, cc.Visible)
	}
}

// TooltipText is empty; nested entries answer for themselves
func (c *Composite) TooltipText(item space.ItemID) (string, bool) { return "", false }
