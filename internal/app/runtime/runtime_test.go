package runtime

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muurk/debloater/internal/app"
	"github.com/muurk/debloater/internal/app/task"
	"github.com/muurk/debloater/internal/app/view"
	"github.com/muurk/debloater/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevice struct{ label string }

func (f fakeDevice) DeviceLabel(ctx context.Context) (string, error) {
	return f.label, nil
}

type fakeCatalog struct{}

func (fakeCatalog) LoadCatalog(ctx context.Context) (catalog.Catalog, error) {
	return catalog.Catalog{
		"com.example.one": {ID: "com.example.one", Removal: catalog.Recommended},
	}, nil
}

func testDeps() app.Deps {
	return app.Deps{Device: fakeDevice{label: "Pixel 6"}, Catalog: fakeCatalog{}}
}

func TestSchedulerDeliversOncePerCommand(t *testing.T) {
	var mu sync.Mutex
	got := make(map[int]int)

	s := NewScheduler[int](context.Background(), func(v int) {
		mu.Lock()
		got[v]++
		mu.Unlock()
	})

	for i := 0; i < 20; i++ {
		v := i
		s.Schedule(&task.Command[int]{Name: "n", Run: func(ctx context.Context) int { return v }})
	}
	s.Schedule(nil)
	s.Shutdown()

	assert.Len(t, got, 20)
	for v, n := range got {
		assert.Equal(t, 1, n, "value %d delivered %d times", v, n)
	}
	assert.Equal(t, 0, s.InFlight())
}

func TestSchedulerShutdownCancels(t *testing.T) {
	var delivered atomic.Bool
	s := NewScheduler[error](context.Background(), func(err error) {
		delivered.Store(err != nil)
	})

	started := make(chan struct{})
	s.Schedule(&task.Command[error]{Name: "block", Run: func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}})

	<-started
	assert.Equal(t, 1, s.InFlight())
	s.Shutdown()
	assert.True(t, delivered.Load(), "cancelled command still delivers its result")
}

// renders collects trees published by a loop.
type renders struct {
	ch chan view.Node
}

func watch(l *Loop) *renders {
	r := &renders{ch: make(chan view.Node, 256)}
	l.Subscribe(func(n view.Node) { r.ch <- n })
	return r
}

func (r *renders) waitFor(t *testing.T, text string) view.Node {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case n := <-r.ch:
			if strings.Contains(n.PlainText(), text) {
				return n
			}
		case <-deadline:
			t.Fatalf("no render containing %q", text)
			return view.Node{}
		}
	}
}

func TestLoopStartupAndNavigation(t *testing.T) {
	l := NewLoop(testDeps())
	assert.Contains(t, l.Tree().PlainText(), app.NoDeviceLabel)

	r := watch(l)
	errc := make(chan error, 1)
	go func() { errc <- l.Run(context.Background()) }()

	r.waitFor(t, "Device: Pixel 6")

	require.True(t, l.Dispatch(app.NavigateToAbout{}))
	r.waitFor(t, "Review and select preinstalled")

	require.True(t, l.Dispatch(app.Quit{}))
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on Quit")
	}

	assert.False(t, l.Dispatch(app.NavigateToList{}), "dispatch after stop must fail")
	<-l.Done()
}

func TestLoopAppliesEventsInOrder(t *testing.T) {
	l := NewLoop(testDeps())

	var mu sync.Mutex
	var seen []string
	l.Subscribe(func(n view.Node) {
		for _, id := range []string{app.IDNavigateList, app.IDNavigateAbout, app.IDNavigateSettings} {
			if b, ok := n.Find(id); ok && b.Style == view.StyleActive {
				mu.Lock()
				if len(seen) == 0 || seen[len(seen)-1] != id {
					seen = append(seen, id)
				}
				mu.Unlock()
			}
		}
	})

	// queued before Run starts, so all are applied in this order
	l.Dispatch(app.NavigateToAbout{})
	l.Dispatch(app.NavigateToSettings{})
	l.Dispatch(app.NavigateToAbout{})
	l.Dispatch(app.Quit{})

	require.NoError(t, l.Run(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{app.IDNavigateList, app.IDNavigateAbout, app.IDNavigateSettings, app.IDNavigateAbout}, seen)
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	l := NewLoop(testDeps())
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on cancel")
	}
}
