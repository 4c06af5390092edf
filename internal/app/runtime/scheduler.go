package runtime

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/muurk/debloater/internal/app/task"
	"github.com/muurk/debloater/internal/logging"
	"go.uber.org/zap"
)

// Scheduler runs commands off the caller's goroutine.
type Scheduler[E any] struct {
	ctx      context.Context
	cancel   context.CancelFunc
	deliver  func(E)
	wg       sync.WaitGroup
	inFlight atomic.Int64
	logger   *zap.Logger
}

// NewScheduler creates a Scheduler whose commands run under ctx and whose
// results are passed to deliver.
func NewScheduler[E any](ctx context.Context, deliver func(E)) *Scheduler[E] {
	ctx, cancel := context.WithCancel(ctx)
	return &Scheduler[E]{
		ctx:     ctx,
		cancel:  cancel,
		deliver: deliver,
		logger:  logging.Named("scheduler"),
	}
}

// Schedule starts cmd. Its result is delivered exactly once.
func (s *Scheduler[E]) Schedule(cmd *task.Command[E]) {
	if cmd == nil {
		return
	}

	s.wg.Add(1)
	s.inFlight.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.inFlight.Add(-1)

		s.deliver(cmd.Run(s.ctx))

		s.logger.Debug("command finished",
			zap.String("command", cmd.Name),
			zap.Uint64("generation", cmd.Generation),
		)
	}()
}

// InFlight returns the number of running commands.
func (s *Scheduler[E]) InFlight() int {
	return int(s.inFlight.Load())
}

// Shutdown cancels outstanding commands and waits for them to return.
func (s *Scheduler[E]) Shutdown() {
	s.cancel()
	s.wg.Wait()
}
