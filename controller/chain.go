package controller

import (
	"sort"

	"github.com/lixenwraith/gridkit/space"
)

// Probe resolves what lies under a pointer position
type Probe func(p space.Point) (ActivationInfo, bool)

// Chain dispatches pointer events to controllers in descending priority
// Controllers of equal priority keep insertion order
type Chain struct {
	controllers []Controller
	active      Controller
}

// NewChain creates a chain holding cs
func NewChain(cs ...Controller) *Chain {
	ch := &Chain{}
	for _, c := range cs {
		ch.Add(c)
	}
	return ch
}

// Add inserts c after every controller of equal or higher priority
func (ch *Chain) Add(c Controller) {
	i := sort.Search(len(ch.controllers), func(i int) bool {
		return ch.controllers[i].Priority() < c.Priority()
	})
	ch.controllers = append(ch.controllers, nil)
	copy(ch.controllers[i+1:], ch.controllers[i:])
	ch.controllers[i] = c
}

// Controllers returns the controllers in dispatch order
func (ch *Chain) Controllers() []Controller {
	return ch.controllers
}

// Active returns the active controller, nil when none
func (ch *Chain) Active() Controller {
	return ch.active
}

// Find returns the first controller accepting info, without activating it
func (ch *Chain) Find(info ActivationInfo) (Controller, Acceptance) {
	for _, c := range ch.controllers {
		if acc := c.Evaluate(info); acc.Accepted {
			return c, acc
		}
	}
	return nil, Acceptance{}
}

// PointerMove routes a move. A capturing controller consumes it; otherwise the
// active controller is dropped and the chain is searched again at p. Returns
// whether the move was consumed.
func (ch *Chain) PointerMove(p space.Point, probe Probe) bool {
	if ch.active != nil {
		if ch.active.ProcessPointerMove(p) {
			return true
		}
		ch.Cancel()
	}
	ch.activateAt(p, probe)
	return false
}

// PointerPress routes a press, activating a controller at p first if none is active
func (ch *Chain) PointerPress(p space.Point, probe Probe) bool {
	if ch.active == nil {
		ch.activateAt(p, probe)
	}
	if ch.active == nil {
		return false
	}
	return ch.active.ProcessPointerPress(p)
}

// PointerRelease routes a release to the active controller
func (ch *Chain) PointerRelease(p space.Point) bool {
	if ch.active == nil {
		return false
	}
	handled := ch.active.ProcessPointerRelease(p)
	if !ch.active.IsActive() {
		ch.active = nil
	}
	return handled
}

// Cancel aborts whatever gesture is in progress
func (ch *Chain) Cancel() {
	if ch.active == nil {
		return
	}
	active := ch.active
	ch.active = nil
	active.Deactivate()
}

func (ch *Chain) activateAt(p space.Point, probe Probe) {
	if probe == nil {
		return
	}
	info, ok := probe(p)
	if !ok {
		return
	}
	c, acc := ch.Find(info)
	if c == nil {
		return
	}
	c.Activate(info, acc)
	ch.active = c
}
