package app

import (
	"fmt"

	"github.com/muurk/debloater/internal/app/list"
	"github.com/muurk/debloater/internal/app/settings"
	"github.com/muurk/debloater/internal/catalog"
)

// Event is anything the update step consumes. The set is closed.
type Event interface{ appEvent() }

// LoadResult is the outcome of a device and catalog load.
type LoadResult struct {
	Generation  uint64
	DeviceLabel string
	Catalog     catalog.Catalog
	// Err is the catalog load failure, if any. Catalog is empty when set.
	Err error
}

type (
	NavigateToAbout    struct{}
	NavigateToSettings struct{}
	NavigateToList     struct{}
	RequestRefresh     struct{}

	// StartupLoadCompleted carries the load scheduled by New.
	StartupLoadCompleted struct{ Result LoadResult }

	// RefreshLoadCompleted carries the load scheduled by RequestRefresh.
	RefreshLoadCompleted struct{ Result LoadResult }

	ListScreenEvent     struct{ Msg list.Msg }
	SettingsScreenEvent struct{ Msg settings.Msg }

	// Quit asks the host to stop. State is left untouched.
	Quit struct{}
)

func (NavigateToAbout) appEvent()      {}
func (NavigateToSettings) appEvent()   {}
func (NavigateToList) appEvent()       {}
func (RequestRefresh) appEvent()       {}
func (StartupLoadCompleted) appEvent() {}
func (RefreshLoadCompleted) appEvent() {}
func (ListScreenEvent) appEvent()      {}
func (SettingsScreenEvent) appEvent()  {}
func (Quit) appEvent()                 {}

// EventName returns a short name for logs.
func EventName(e Event) string {
	switch e := e.(type) {
	case ListScreenEvent:
		return fmt.Sprintf("ListScreenEvent(%T)", e.Msg)
	case SettingsScreenEvent:
		return fmt.Sprintf("SettingsScreenEvent(%T)", e.Msg)
	default:
		return fmt.Sprintf("%T", e)
	}
}
