// Package gui declares what the interactive core needs from its hosting widget.
// Implementations live in the host package; tests provide their own.
package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridkit/space"
)

// Cursor is the pointer shape requested by a controller
type Cursor uint8

const (
	CursorArrow  Cursor = iota
	CursorSplitH        // resizing columns
	CursorSplitV        // resizing rows
	CursorHand
)

// String returns human-readable cursor name
func (c Cursor) String() string {
	switch c {
	case CursorArrow:
		return "Arrow"
	case CursorSplitH:
		return "SplitH"
	case CursorSplitV:
		return "SplitV"
	case CursorHand:
		return "Hand"
	default:
		return "Unknown"
	}
}

// RubberBand is a drag-feedback visual owned by whoever created it
type RubberBand interface {
	SetGeometry(r space.Rect)
	Geometry() space.Rect
	Show()
	Close()
}

// Widget is the surface that owns the grid
type Widget interface {
	Rect() space.Rect
	Cursor() Cursor
	SetCursor(c Cursor)
	NewRubberBand() RubberBand
}

// Context is passed through draw and pointer calls so views and controllers
// can reach the owning widget and the event being processed
type Context struct {
	Widget Widget
	Event  tcell.Event
}
