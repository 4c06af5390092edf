// Package task describes asynchronous work requested by an update step.
//
// A Command is inert data until a host runs it. Running it yields exactly one
// message, which the host feeds back into the same update step.
package task

import "context"

// Command is a named unit of background work producing one M.
type Command[M any] struct {
	// Name identifies the work in logs ("app.load", "list.fetch-installed").
	Name string

	// Generation is the load generation the command belongs to. Results
	// tagged with an older generation are discarded by the receiver.
	Generation uint64

	// Run performs the work. It must not return a nil message.
	Run func(ctx context.Context) M
}

// Map lifts a command producing A into one producing B.
// A nil command maps to nil.
func Map[A, B any](c *Command[A], f func(A) B) *Command[B] {
	if c == nil {
		return nil
	}
	run := c.Run
	return &Command[B]{
		Name:       c.Name,
		Generation: c.Generation,
		Run: func(ctx context.Context) B {
			return f(run(ctx))
		},
	}
}
