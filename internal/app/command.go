package app

import (
	"context"
	"errors"

	"github.com/muurk/debloater/internal/app/task"
	"github.com/muurk/debloater/internal/catalog"
	"github.com/muurk/debloater/internal/logging"
	"go.uber.org/zap"
)

// Command is background work yielding one Event.
type Command = task.Command[Event]

// Command names.
const (
	CommandStartup = "app.startup"
	CommandRefresh = "app.refresh"
)

var errNoCatalogLoader = errors.New("no catalog loader configured")

// loadCommand returns a command that queries the device and loads the
// catalog for the current generation.
func (s State) loadCommand(name string, wrap func(LoadResult) Event) *Command {
	gen := s.Generation
	deps := s.deps
	return &Command{
		Name:       name,
		Generation: gen,
		Run: func(ctx context.Context) Event {
			return wrap(load(ctx, deps, gen))
		},
	}
}

// load never fails: a missing device yields NoDeviceLabel and a catalog
// failure yields an empty catalog plus Err.
func load(ctx context.Context, deps Deps, gen uint64) LoadResult {
	r := LoadResult{Generation: gen, DeviceLabel: NoDeviceLabel, Catalog: catalog.Catalog{}}

	if deps.Device != nil {
		label, err := deps.Device.DeviceLabel(ctx)
		if err != nil {
			logging.Named("app").Warn("device query failed",
				zap.Uint64("generation", gen),
				zap.Error(err),
			)
		} else if label != "" {
			r.DeviceLabel = label
		}
	}

	if deps.Catalog == nil {
		r.Err = errNoCatalogLoader
		return r
	}
	c, err := deps.Catalog.LoadCatalog(ctx)
	if err != nil {
		r.Err = err
		return r
	}
	if c != nil {
		r.Catalog = c
	}
	return r
}
