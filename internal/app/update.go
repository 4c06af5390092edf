package app

import (
	"fmt"

	"github.com/muurk/debloater/internal/app/list"
	"github.com/muurk/debloater/internal/app/task"
	"github.com/muurk/debloater/internal/logging"
)

// Update applies e to s. It never blocks and never fails; an event type
// outside the closed set is a programming error and panics.
func Update(s State, e Event) (State, *Command) {
	logging.LogEvent(EventName(e), s.Active.String())

	s, cmd := update(s, e)
	if cmd != nil {
		logging.LogCommand(cmd.Name, cmd.Generation)
	}
	return s, cmd
}

func update(s State, e Event) (State, *Command) {
	switch e := e.(type) {
	case NavigateToAbout:
		s.Active = ScreenAbout
		return s, nil

	case NavigateToSettings:
		s.Active = ScreenSettings
		return s, nil

	case NavigateToList:
		s.Active = ScreenList
		return s.updateList(list.ApplySettings{Settings: s.Settings.Values()})

	case RequestRefresh:
		s.Generation++
		s.List = s.List.Reset()
		s.Active = ScreenList
		return s, s.loadCommand(CommandRefresh, func(r LoadResult) Event {
			return RefreshLoadCompleted{Result: r}
		})

	case StartupLoadCompleted:
		return s.applyLoad("StartupLoadCompleted", e.Result)

	case RefreshLoadCompleted:
		return s.applyLoad("RefreshLoadCompleted", e.Result)

	case ListScreenEvent:
		if stamped, ok := e.Msg.(list.Stamped); ok && stamped.Stamp() != s.Generation {
			logging.LogStaleResult(EventName(e), stamped.Stamp(), s.Generation)
			return s, nil
		}
		return s.updateList(e.Msg)

	case SettingsScreenEvent:
		s.Settings = s.Settings.Update(e.Msg)
		return s, nil

	case Quit:
		return s, nil

	default:
		panic(fmt.Sprintf("app: unhandled event %T", e))
	}
}

func (s State) applyLoad(name string, r LoadResult) (State, *Command) {
	if r.Generation != s.Generation {
		logging.LogStaleResult(name, r.Generation, s.Generation)
		return s, nil
	}

	s.DeviceLabel = r.DeviceLabel
	if s.DeviceLabel == "" {
		s.DeviceLabel = NoDeviceLabel
	}
	s.Catalog = r.Catalog

	return s.updateList(list.LoadPackages{
		Generation:  r.Generation,
		Catalog:     r.Catalog,
		Err:         r.Err,
		Settings:    s.Settings.Values(),
		DeviceLabel: s.DeviceLabel,
	})
}

func (s State) updateList(msg list.Msg) (State, *Command) {
	var cmd *list.Command
	s.List, cmd = s.List.Update(msg)
	return s, task.Map(cmd, liftList)
}

func liftList(m list.Msg) Event {
	return ListScreenEvent{Msg: m}
}
