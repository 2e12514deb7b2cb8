package host

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridkit/space"
)

// PointerAction represents the type of pointer event
type PointerAction uint8

const (
	PointerNone PointerAction = iota
	PointerPress
	PointerRelease
	PointerMove
	PointerDrag
)

// String returns human-readable action name
func (a PointerAction) String() string {
	switch a {
	case PointerPress:
		return "Press"
	case PointerRelease:
		return "Release"
	case PointerMove:
		return "Move"
	case PointerDrag:
		return "Drag"
	default:
		return "None"
	}
}

// buttonMask selects the buttons that take part in press/release tracking
// Wheel events carry no press state and are ignored
const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3

// PointerEvent is a tcell mouse event resolved against the previous button state
type PointerEvent struct {
	Action PointerAction
	Point  space.Point
	Button tcell.ButtonMask // Button pressed or released, zero for moves
}

// PointerTracker turns tcell's level-triggered button masks into edges
// tcell reports held buttons on every event; press and release are derived here
type PointerTracker struct {
	held tcell.ButtonMask
}

// Track resolves ev and updates the held button state
func (t *PointerTracker) Track(ev *tcell.EventMouse) PointerEvent {
	x, y := ev.Position()
	buttons := ev.Buttons() & buttonMask
	pe := PointerEvent{Point: space.Pt(x, y)}

	switch {
	case buttons != 0 && t.held == 0:
		pe.Action = PointerPress
		pe.Button = buttons
	case buttons&^t.held != 0:
		// Another button joined a drag, report it as a press of that button
		pe.Action = PointerPress
		pe.Button = buttons &^ t.held
	case buttons != 0:
		pe.Action = PointerDrag
	case t.held != 0:
		pe.Action = PointerRelease
		pe.Button = t.held
	default:
		pe.Action = PointerMove
	}

	t.held = buttons
	return pe
}

// Held returns the buttons currently held
func (t *PointerTracker) Held() tcell.ButtonMask {
	return t.held
}
