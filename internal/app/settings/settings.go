// Package settings is the Settings screen: user preferences that shape how
// the package list is shown. Values live for the process only.
package settings

import (
	"fmt"

	"github.com/muurk/debloater/internal/app/view"
)

// SortBy orders the package list.
type SortBy int

const (
	SortByID SortBy = iota
	SortByTier
)

func (s SortBy) String() string {
	switch s {
	case SortByTier:
		return "tier"
	default:
		return "id"
	}
}

// Values are the preferences shared with the List screen.
type Values struct {
	// ExpertMode shows Expert and Unsafe packages.
	ExpertMode bool
	// DisableMode prefers disabling a package over uninstalling it.
	DisableMode bool
	SortBy      SortBy
	// Notifications posts a desktop notification when a device finishes loading.
	Notifications bool
}

// Defaults returns the values a fresh process starts with.
func Defaults() Values {
	return Values{SortBy: SortByID}
}

// Msg is a Settings screen message.
type Msg interface{ settingsMsg() }

type (
	ToggleExpertMode    struct{}
	ToggleDisableMode   struct{}
	CycleSortBy         struct{}
	ToggleNotifications struct{}
)

func (ToggleExpertMode) settingsMsg()    {}
func (ToggleDisableMode) settingsMsg()   {}
func (CycleSortBy) settingsMsg()         {}
func (ToggleNotifications) settingsMsg() {}

// Model is the Settings screen state.
type Model struct {
	values Values
}

// New returns a Model holding Defaults.
func New() Model {
	return Model{values: Defaults()}
}

// Values returns the current preferences.
func (m Model) Values() Values {
	return m.values
}

// Update applies msg. Settings never schedules work.
func (m Model) Update(msg Msg) Model {
	switch msg.(type) {
	case ToggleExpertMode:
		m.values.ExpertMode = !m.values.ExpertMode
	case ToggleDisableMode:
		m.values.DisableMode = !m.values.DisableMode
	case CycleSortBy:
		m.values.SortBy = (m.values.SortBy + 1) % 2
	case ToggleNotifications:
		m.values.Notifications = !m.values.Notifications
	default:
		panic(fmt.Sprintf("settings: unhandled message %T", msg))
	}
	return m
}

// Render draws the screen.
func (m Model) Render() view.Node {
	v := m.values
	return view.Column(
		view.Styled(view.StyleTitle, "Settings"),
		view.Toggle("settings.expert", "Expert mode (show Expert and Unsafe packages)", v.ExpertMode, ToggleExpertMode{}),
		view.Toggle("settings.disable", "Disable packages instead of uninstalling", v.DisableMode, ToggleDisableMode{}),
		view.Button("settings.sort", "Sort by: "+v.SortBy.String(), CycleSortBy{}),
		view.Toggle("settings.notifications", "Notify when a device finishes loading", v.Notifications, ToggleNotifications{}),
		view.Styled(view.StyleMuted, "Settings are not saved and reset when debloater exits."),
	)
}
