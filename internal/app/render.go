package app

import (
	"github.com/muurk/debloater/internal/app/list"
	"github.com/muurk/debloater/internal/app/settings"
	"github.com/muurk/debloater/internal/app/view"
)

// Node IDs of the navigation bar. Remote clients send them as event names.
const (
	IDNav              = "nav"
	IDBody             = "body"
	IDRefresh          = "refresh"
	IDNavigateList     = "navigate_list"
	IDNavigateAbout    = "navigate_about"
	IDNavigateSettings = "navigate_settings"
)

// Render projects s into a display tree: the navigation bar followed by the
// active screen. It reads s only.
func Render(s State) view.Node {
	nav := view.Row(
		view.Text("Device: "+s.DeviceLabel),
		view.Spacer(),
		view.Button(IDRefresh, "Refresh", RequestRefresh{}),
		navButton(IDNavigateList, "Apps", NavigateToList{}, s.Active == ScreenList),
		navButton(IDNavigateAbout, "About", NavigateToAbout{}, s.Active == ScreenAbout),
		navButton(IDNavigateSettings, "Settings", NavigateToSettings{}, s.Active == ScreenSettings),
	)
	nav.ID = IDNav

	var body view.Node
	switch s.Active {
	case ScreenAbout:
		body = s.About.Render()
	case ScreenSettings:
		body = s.Settings.Render().Map(func(v any) any {
			return SettingsScreenEvent{Msg: v.(settings.Msg)}
		})
	default:
		body = s.List.Render().Map(func(v any) any {
			return ListScreenEvent{Msg: v.(list.Msg)}
		})
	}
	body.ID = IDBody

	return view.Column(nav, body)
}

func navButton(id, label string, e Event, active bool) view.Node {
	b := view.Button(id, label, e)
	if active {
		b = b.WithStyle(view.StyleActive)
	}
	return b
}
