// Package controller drives pointer gestures over a grid through a prioritized
// capture protocol.
//
// Lifecycle of one controller:
//
//	Evaluate -> Activate -> [StartCapturing -> ProcessPointerMove* -> StopCapturing] -> Apply -> Deactivate
//
// Evaluate is a pure predicate returning an Acceptance; the acceptance is handed
// back to Activate so nothing computed while probing leaks into committed state.
// Calling a lifecycle step out of order panics with an error wrapping
// ErrPrecondition. Deactivate releases every resource taken by Activate and
// StartCapturing and is safe on any path, including an aborted drag.
//
// Chain holds controllers in descending priority and hands a pointer event to the
// first one that accepts it. All calls happen on the goroutine running the event
// loop.
package controller
