package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridkit/space"
)

// Surface is a clipped drawing target over a tcell screen
// Surfaces derived with WithClip share one exclusion list
type Surface struct {
	screen   tcell.Screen
	clip     space.Rect
	excluded *[]space.Rect
}

// NewSurface creates a surface clipped to r
func NewSurface(screen tcell.Screen, r space.Rect) *Surface {
	return &Surface{
		screen:   screen,
		clip:     r,
		excluded: new([]space.Rect),
	}
}

// Screen returns the underlying screen
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

// Clip returns the current clip rectangle
func (s *Surface) Clip() space.Rect {
	return s.clip
}

// WithClip returns a surface clipped to the overlap of the current clip and r
func (s *Surface) WithClip(r space.Rect) *Surface {
	return &Surface{
		screen:   s.screen,
		clip:     s.clip.Intersect(r),
		excluded: s.excluded,
	}
}

// Exclude removes r from the drawable area of this surface and every surface
// sharing its exclusion list
func (s *Surface) Exclude(r space.Rect) {
	if r.Empty() {
		return
	}
	*s.excluded = append(*s.excluded, r)
}

// Excluded returns the excluded rectangles in the order they were added
func (s *Surface) Excluded() []space.Rect {
	return *s.excluded
}

// Visible reports whether a cell can be written
func (s *Surface) Visible(x, y int) bool {
	p := space.Pt(x, y)
	if !s.clip.Contains(p) {
		return false
	}
	for _, r := range *s.excluded {
		if r.Contains(p) {
			return false
		}
	}
	return true
}

// SetCell writes a single cell, returns false when clipped
func (s *Surface) SetCell(x, y int, ch rune, style tcell.Style) bool {
	if !s.Visible(x, y) {
		return false
	}
	s.screen.SetContent(x, y, ch, nil, style)
	return true
}

// Fill paints r with spaces in style
func (s *Surface) Fill(r space.Rect, style tcell.Style) {
	s.FillRune(r, ' ', style)
}

// FillRune paints every cell of r with ch
func (s *Surface) FillRune(r space.Rect, ch rune, style tcell.Style) {
	r = r.Intersect(s.clip)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetCell(x, y, ch, style)
		}
	}
}

// Text draws s starting at (x, y) and returns the number of columns advanced
// Wide runes advance two columns, zero-width runes are dropped
func (s *Surface) Text(x, y int, text string, style tcell.Style) int {
	start := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		s.SetCell(x, y, ch, style)
		x += w
	}
	return x - start
}
