// Package runtime hosts the controller for front ends that do not bring
// their own event loop.
//
// A Loop owns the controller state and drains a single event queue on one
// goroutine, so events are applied strictly in arrival order. Commands
// returned by the update step run on a Scheduler: one goroutine per command,
// each delivering exactly one event back into the queue. Nothing orders
// commands against each other; stale results are the controller's concern.
package runtime
