package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/debloater/internal/app"
	"github.com/muurk/debloater/internal/app/list"
	"github.com/muurk/debloater/internal/app/settings"
)

// Model hosts the controller inside Bubble Tea. Bubble Tea's update goroutine
// is the control thread; commands run in its command goroutines.
type Model struct {
	ctx     context.Context
	state   app.State
	startup *app.Command

	// UI state
	Width  int
	Height int

	help      help.Model
	global    globalKeyMap
	listKeys  listKeyMap
	setKeys   settingsKeyMap
	searchKey searchKeyMap

	spinner   spinner.Model
	search    textinput.Model
	searching bool
	quitting  bool
}

// NewModel creates the terminal host for deps. Commands run under ctx.
func NewModel(ctx context.Context, deps app.Deps) Model {
	state, startup := app.New(deps)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "tier:expert list:google installed words"
	ti.PromptStyle = FocusedInputStyle
	ti.CharLimit = 128

	g := newGlobalKeyMap()
	return Model{
		ctx:       ctx,
		state:     state,
		startup:   startup,
		Width:     MinTerminalWidth,
		Height:    MinTerminalHeight,
		help:      help.New(),
		global:    g,
		listKeys:  newListKeyMap(g),
		setKeys:   newSettingsKeyMap(g),
		searchKey: newSearchKeyMap(),
		spinner:   s,
		search:    ti,
	}
}

// State returns the controller state.
func (m Model) State() app.State {
	return m.state
}

// Init starts the spinner and the startup load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run(m.startup))
}

// run turns a controller command into a Bubble Tea command. Bubble Tea
// delivers the returned event exactly once.
func (m Model) run(cmd *app.Command) tea.Cmd {
	if cmd == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return cmd.Run(ctx)
	}
}

// dispatch feeds e through the controller.
func (m Model) dispatch(e app.Event) (Model, tea.Cmd) {
	var cmd *app.Command
	m.state, cmd = app.Update(m.state, e)

	if _, ok := e.(app.Quit); ok {
		m.quitting = true
		return m, tea.Quit
	}
	return m, m.run(cmd)
}

// Update handles Bubble Tea messages and controller events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case app.Event:
		return m.dispatch(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.state.Active != app.ScreenList || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.dispatch(listEvent(list.MoveCursor{Delta: -1}))
		case tea.MouseButtonWheelDown:
			return m.dispatch(listEvent(list.MoveCursor{Delta: 1}))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.dispatch(app.Quit{})
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.global.Quit):
		return m.dispatch(app.Quit{})
	case key.Matches(msg, m.global.Refresh):
		return m.dispatch(app.RequestRefresh{})
	case key.Matches(msg, m.global.Apps):
		return m.dispatch(app.NavigateToList{})
	case key.Matches(msg, m.global.About):
		return m.dispatch(app.NavigateToAbout{})
	case key.Matches(msg, m.global.Settings):
		return m.dispatch(app.NavigateToSettings{})
	}

	switch m.state.Active {
	case app.ScreenList:
		return m.handleListKey(msg)
	case app.ScreenSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.listKeys
	switch {
	case key.Matches(msg, k.Up):
		return m.dispatch(listEvent(list.MoveCursor{Delta: -1}))
	case key.Matches(msg, k.Down):
		return m.dispatch(listEvent(list.MoveCursor{Delta: 1}))
	case key.Matches(msg, k.Select):
		return m.dispatch(listEvent(list.ToggleSelected{}))
	case key.Matches(msg, k.SelectAll):
		return m.dispatch(listEvent(list.SelectAllVisible{}))
	case key.Matches(msg, k.Clear):
		return m.dispatch(listEvent(list.ClearSelection{}))
	case key.Matches(msg, k.Tier):
		return m.dispatch(listEvent(list.CycleTier{}))
	case key.Matches(msg, k.List):
		return m.dispatch(listEvent(list.CycleList{}))
	case key.Matches(msg, k.Copy):
		return m.dispatch(listEvent(list.CopySelection{}))
	case key.Matches(msg, k.Search):
		m.searching = true
		m.search.SetValue(m.state.List.Query())
		m.search.CursorEnd()
		return m, m.search.Focus()
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.setKeys
	switch {
	case key.Matches(msg, k.Expert):
		return m.dispatch(settingsEvent(settings.ToggleExpertMode{}))
	case key.Matches(msg, k.Disable):
		return m.dispatch(settingsEvent(settings.ToggleDisableMode{}))
	case key.Matches(msg, k.Sort):
		return m.dispatch(settingsEvent(settings.CycleSortBy{}))
	case key.Matches(msg, k.Notifications):
		return m.dispatch(settingsEvent(settings.ToggleNotifications{}))
	}
	return m, nil
}

// updateSearch edits the query; every change re-filters the list.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.searchKey.Done):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.searchKey.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m.dispatch(listEvent(list.SetQuery{Query: ""}))
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}

	m, dcmd := m.dispatch(listEvent(list.SetQuery{Query: m.search.Value()}))
	return m, tea.Batch(cmd, dcmd)
}

func listEvent(msg list.Msg) app.Event {
	return app.ListScreenEvent{Msg: msg}
}

func settingsEvent(msg settings.Msg) app.Event {
	return app.SettingsScreenEvent{Msg: msg}
}

// View renders the controller's display tree inside the application frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.Width < MinTerminalWidth || m.Height < MinTerminalHeight {
		return RenderTooSmall(m.Width, m.Height)
	}

	r := renderer{
		width:    contentWidth(m.Width),
		listRows: contentHeight(m.Height) - 10,
	}
	if m.searching {
		r.search = m.search.View()
	}
	if m.state.List.Loading() {
		r.spinner = m.spinner.View()
	}

	content := r.node(app.Render(m.state), r.width)
	return RenderApplicationContainer(content, m.helpView(), m.Width, m.Height)
}

func (m Model) helpView() string {
	switch {
	case m.searching:
		return m.help.View(m.searchKey)
	case m.state.Active == app.ScreenList:
		return m.help.View(m.listKeys)
	case m.state.Active == app.ScreenSettings:
		return m.help.View(m.setKeys)
	default:
		return m.help.View(m.global)
	}
}

// Run starts the full-screen terminal host and blocks until it exits.
func Run(ctx context.Context, deps app.Deps) error {
	p := tea.NewProgram(
		NewModel(ctx, deps),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
