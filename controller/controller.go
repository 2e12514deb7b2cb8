package controller

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gridkit/gui"
	"github.com/lixenwraith/gridkit/space"
	"github.com/lixenwraith/gridkit/view"
)

// ErrPrecondition is wrapped by every panic raised for out-of-order lifecycle calls
var ErrPrecondition = errors.New("controller: precondition violated")

func violate(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrPrecondition}, args...)...))
}

// Priority orders controllers in a chain, higher is tried first
type Priority int

const (
	PriorityBackground Priority = 0
	PriorityNormal     Priority = 50
	PriorityOverlay    Priority = 100
)

// State is the lifecycle position of a controller
type State uint8

const (
	StateIdle State = iota
	StateActive
	StateCapturing
)

// String returns human-readable state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	case StateCapturing:
		return "Capturing"
	default:
		return "Unknown"
	}
}

// ActivationInfo is the snapshot a controller evaluates and activates against
// It is only valid for the duration of the call
type ActivationInfo struct {
	Point    space.Point     // Pointer position
	Item     space.ItemID    // Item under the pointer
	ItemRect space.Rect      // Rect of the whole item
	Cache    *view.CacheView // Entry under the pointer
	Context  gui.Context
}

// Acceptance is the result of Evaluate
type Acceptance struct {
	Accepted bool
	// Delta is the signed distance from the handled edge to the pointer, kept
	// until Apply so the gesture stays anchored where it was grabbed
	Delta int
}

// Controller is one participant in the pointer capture protocol
type Controller interface {
	Priority() Priority
	State() State
	IsActive() bool
	IsCapturing() bool

	Evaluate(info ActivationInfo) Acceptance
	Activate(info ActivationInfo, acc Acceptance)
	Deactivate()

	StartCapturing()
	StopCapturing()
	Apply()

	ProcessPointerPress(p space.Point) bool
	ProcessPointerMove(p space.Point) bool
	ProcessPointerRelease(p space.Point) bool
}
