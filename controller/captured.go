package controller

import (
	"github.com/lixenwraith/gridkit/space"
)

// captureHooks are the steps a concrete controller adds to Captured
type captureHooks interface {
	evaluate(info ActivationInfo) Acceptance
	activated(info ActivationInfo, acc Acceptance)
	deactivated()
	capturingStarted()
	capturingStopped()
	tracked(p space.Point)
	apply()
}

// Captured implements the lifecycle shared by drag controllers: a press while
// active starts capturing, moves while capturing are consumed, and the release
// stops capturing, applies and deactivates
type Captured struct {
	priority Priority
	state    State
	info     ActivationInfo
	point    space.Point
	hooks    captureHooks
}

func newCaptured(priority Priority, hooks captureHooks) Captured {
	return Captured{priority: priority, hooks: hooks}
}

// Priority returns the chain priority
func (c *Captured) Priority() Priority {
	return c.priority
}

// State returns the lifecycle state
func (c *Captured) State() State {
	return c.state
}

// IsActive reports whether the controller is active, capturing or not
func (c *Captured) IsActive() bool {
	return c.state != StateIdle
}

// IsCapturing reports whether pointer moves are consumed
func (c *Captured) IsCapturing() bool {
	return c.state == StateCapturing
}

// Activation returns the snapshot the controller was activated with
func (c *Captured) Activation() ActivationInfo {
	return c.info
}

// Point returns the tracked pointer position
func (c *Captured) Point() space.Point {
	return c.point
}

// Evaluate reports whether the controller claims info, without changing state
func (c *Captured) Evaluate(info ActivationInfo) Acceptance {
	return c.hooks.evaluate(info)
}

// Activate moves Idle to Active using the acceptance returned by Evaluate
func (c *Captured) Activate(info ActivationInfo, acc Acceptance) {
	if c.state != StateIdle {
		violate("activate while %s", c.state)
	}
	if !acc.Accepted {
		violate("activate without acceptance")
	}
	if info.Context.Widget == nil {
		violate("activate without widget")
	}

	c.state = StateActive
	c.info = info
	c.point = info.Point
	c.hooks.activated(info, acc)
}

// Deactivate returns to Idle, stopping capture first; no-op when idle
func (c *Captured) Deactivate() {
	if c.state == StateIdle {
		return
	}
	if c.state == StateCapturing {
		c.StopCapturing()
	}

	c.hooks.deactivated()
	c.state = StateIdle
	c.info = ActivationInfo{}
	c.point = space.Point{}
}

// StartCapturing moves Active to Capturing
func (c *Captured) StartCapturing() {
	if c.state != StateActive {
		violate("start capturing while %s", c.state)
	}
	c.state = StateCapturing
	c.hooks.capturingStarted()
}

// StopCapturing moves Capturing back to Active
func (c *Captured) StopCapturing() {
	if c.state != StateCapturing {
		violate("stop capturing while %s", c.state)
	}
	c.hooks.capturingStopped()
	c.state = StateActive
}

// Apply commits the gesture, capturing or not
func (c *Captured) Apply() {
	if c.state == StateIdle {
		violate("apply while idle")
	}
	c.hooks.apply()
}

// ProcessPointerPress starts capturing an active, non-capturing controller
func (c *Captured) ProcessPointerPress(p space.Point) bool {
	if c.state != StateActive {
		return false
	}
	c.point = p
	c.hooks.tracked(p)
	c.StartCapturing()
	return true
}

// ProcessPointerMove tracks p while capturing; otherwise the event is left to the chain
func (c *Captured) ProcessPointerMove(p space.Point) bool {
	if c.state != StateCapturing {
		return false
	}
	c.point = p
	c.hooks.tracked(p)
	return true
}

// ProcessPointerRelease finishes a captured gesture at p
func (c *Captured) ProcessPointerRelease(p space.Point) bool {
	if c.state != StateCapturing {
		return false
	}
	c.point = p
	c.hooks.tracked(p)
	c.StopCapturing()
	defer c.Deactivate()
	c.Apply()
	return true
}
