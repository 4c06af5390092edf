package runtime

import (
	"context"
	"sync"

	"github.com/muurk/debloater/internal/app"
	"github.com/muurk/debloater/internal/app/view"
)

const queueSize = 64

// RenderFunc receives every new display tree. It runs on the loop goroutine
// and must not block.
type RenderFunc func(view.Node)

// Loop runs the controller.
type Loop struct {
	state   app.State
	startup *app.Command

	events   chan app.Event
	done     chan struct{}
	doneOnce sync.Once

	mu        sync.Mutex
	tree      view.Node
	listeners map[int]RenderFunc
	nextID    int
}

// NewLoop builds the controller state. Nothing runs until Run.
func NewLoop(deps app.Deps) *Loop {
	state, startup := app.New(deps)
	return &Loop{
		state:     state,
		startup:   startup,
		events:    make(chan app.Event, queueSize),
		done:      make(chan struct{}),
		tree:      app.Render(state),
		listeners: make(map[int]RenderFunc),
	}
}

// Dispatch queues e. It is safe from any goroutine and reports false once the
// loop has stopped.
func (l *Loop) Dispatch(e app.Event) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.events <- e:
		return true
	case <-l.done:
		return false
	}
}

// Tree returns the most recent display tree.
func (l *Loop) Tree() view.Node {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree
}

// Subscribe registers fn for future renders and returns a function that
// removes it.
func (l *Loop) Subscribe(fn RenderFunc) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.listeners[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.listeners, id)
	}
}

// Done is closed when the loop has stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run drains the queue until ctx is cancelled or a Quit event arrives.
// Commands still running are cancelled and waited for before Run returns.
func (l *Loop) Run(ctx context.Context) error {
	sched := NewScheduler[app.Event](ctx, func(e app.Event) { l.Dispatch(e) })
	defer sched.Shutdown()
	defer l.doneOnce.Do(func() { close(l.done) })

	l.publish()
	sched.Schedule(l.startup)
	l.startup = nil

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case e := <-l.events:
			var cmd *app.Command
			l.state, cmd = app.Update(l.state, e)
			l.publish()
			sched.Schedule(cmd)

			if _, quit := e.(app.Quit); quit {
				return nil
			}
		}
	}
}

func (l *Loop) publish() {
	tree := app.Render(l.state)

	l.mu.Lock()
	l.tree = tree
	listeners := make([]RenderFunc, 0, len(l.listeners))
	for _, fn := range l.listeners {
		listeners = append(listeners, fn)
	}
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(tree)
	}
}
