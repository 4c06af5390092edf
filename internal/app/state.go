package app

import (
	"github.com/muurk/debloater/internal/app/about"
	"github.com/muurk/debloater/internal/app/list"
	"github.com/muurk/debloater/internal/app/settings"
	"github.com/muurk/debloater/internal/catalog"
)

// NoDeviceLabel is shown while no device has been identified.
const NoDeviceLabel = "No phone connected"

// ScreenID names a top-level screen.
type ScreenID int

const (
	ScreenList ScreenID = iota
	ScreenAbout
	ScreenSettings
)

func (s ScreenID) String() string {
	switch s {
	case ScreenList:
		return "List"
	case ScreenAbout:
		return "About"
	case ScreenSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// State is the controller state. All three screens are always allocated;
// Active picks the one shown.
type State struct {
	Active   ScreenID
	List     list.Model
	About    about.Model
	Settings settings.Model

	DeviceLabel string
	Catalog     catalog.Catalog

	// Generation is the current load. Results carrying another value are stale.
	Generation uint64

	deps Deps
}

// New builds the initial state and the startup load command.
func New(deps Deps) (State, *Command) {
	s := State{
		Active:      ScreenList,
		List:        list.New(deps.List),
		About:       about.New(),
		Settings:    settings.New(),
		DeviceLabel: NoDeviceLabel,
		Catalog:     catalog.Catalog{},
		Generation:  1,
		deps:        deps,
	}

	cmd := s.loadCommand(CommandStartup, func(r LoadResult) Event {
		return StartupLoadCompleted{Result: r}
	})
	return s, cmd
}
