package tui

import "github.com/charmbracelet/bubbles/key"

// globalKeyMap holds bindings active on every screen.
type globalKeyMap struct {
	Refresh  key.Binding
	Apps     key.Binding
	About    key.Binding
	Settings key.Binding
	Quit     key.Binding
}

// listKeyMap holds List screen bindings.
type listKeyMap struct {
	globalKeyMap
	Up        key.Binding
	Down      key.Binding
	Search    key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Clear     key.Binding
	Tier      key.Binding
	List      key.Binding
	Copy      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Select, k.Tier, k.List, k.Copy, k.Refresh, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.SelectAll, k.Clear},
		{k.Search, k.Tier, k.List, k.Copy},
		{k.Refresh, k.Apps, k.About, k.Settings, k.Quit},
	}
}

// settingsKeyMap holds Settings screen bindings.
type settingsKeyMap struct {
	globalKeyMap
	Expert        key.Binding
	Disable       key.Binding
	Sort          key.Binding
	Notifications key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k settingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Expert, k.Disable, k.Sort, k.Notifications, k.Apps, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k settingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Expert, k.Disable, k.Sort, k.Notifications},
		{k.Refresh, k.Apps, k.About, k.Quit},
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k globalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Apps, k.About, k.Settings, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k globalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// searchKeyMap is active while the search field has focus.
type searchKeyMap struct {
	Done   key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newGlobalKeyMap() globalKeyMap {
	return globalKeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Apps: key.NewBinding(
			key.WithKeys("1", "a"),
			key.WithHelp("1/a", "apps"),
		),
		About: key.NewBinding(
			key.WithKeys("2", "b"),
			key.WithHelp("2/b", "about"),
		),
		Settings: key.NewBinding(
			key.WithKeys("3", "s"),
			key.WithHelp("3/s", "settings"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newListKeyMap(g globalKeyMap) listKeyMap {
	return listKeyMap{
		globalKeyMap: g,
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "select"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "select visible"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear selection"),
		),
		Tier: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tier"),
		),
		List: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "list"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy ids"),
		),
	}
}

func newSettingsKeyMap(g globalKeyMap) settingsKeyMap {
	return settingsKeyMap{
		globalKeyMap: g,
		Expert: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expert mode"),
		),
		Disable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disable mode"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort order"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notifications"),
		),
	}
}

func newSearchKeyMap() searchKeyMap {
	return searchKeyMap{
		Done: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
	}
}
