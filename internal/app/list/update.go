package list

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/muurk/debloater/internal/app/task"
	"github.com/muurk/debloater/internal/catalog"
	"github.com/muurk/debloater/internal/logging"
	"go.uber.org/zap"
)

// Command is work requested by the List screen.
type Command = task.Command[Msg]

const (
	CommandFetchInstalled = "list.fetch-installed"
	CommandCopy           = "list.copy"
	CommandNotify         = "list.notify"
)

// Update applies msg and returns the new Model plus any work to run.
func (m Model) Update(msg Msg) (Model, *Command) {
	switch msg := msg.(type) {
	case LoadPackages:
		return m.loadPackages(msg)

	case InstalledLoaded:
		return m.installedLoaded(msg)

	case ApplySettings:
		m.settings = msg.Settings
		return m.refresh(), nil

	case SetQuery:
		m.query = msg.Query
		q, err := ParseQuery(msg.Query)
		m.queryErr = err
		if err == nil {
			m.compiled = q
		}
		return m.refresh(), nil

	case CycleTier:
		next := m.tierFilter + 1
		if int(next) >= len(catalog.Removals) {
			next = -1
		}
		m.tierFilter = next
		return m.refresh(), nil

	case CycleList:
		m.listFilter = nextList(m.lists(), m.listFilter)
		return m.refresh(), nil

	case MoveCursor:
		m.cursor = clamp(m.cursor+msg.Delta, len(m.visible))
		return m, nil

	case ToggleSelected:
		id := msg.ID
		if id == "" {
			if len(m.visible) == 0 {
				return m, nil
			}
			id = m.visible[m.cursor].Package.ID
		}
		sel := maps.Clone(m.selected)
		if sel == nil {
			sel = make(map[string]bool)
		}
		if sel[id] {
			delete(sel, id)
		} else {
			sel[id] = true
		}
		m.selected = sel
		return m, nil

	case SelectAllVisible:
		sel := maps.Clone(m.selected)
		if sel == nil {
			sel = make(map[string]bool, len(m.visible))
		}
		for _, r := range m.visible {
			sel[r.Package.ID] = true
		}
		m.selected = sel
		return m, nil

	case ClearSelection:
		m.selected = nil
		return m, nil

	case CopySelection:
		return m.copySelection()

	case ClipboardDone:
		if msg.Generation != m.generation {
			return m, nil
		}
		if msg.Err != nil {
			m.status = "Copy failed: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("Copied %d package id(s) to the clipboard", msg.Count)
		}
		return m, nil

	case NotifyDone:
		if msg.Generation != m.generation {
			return m, nil
		}
		if msg.Err != nil {
			logging.Named("list").Warn("desktop notification failed", zap.Error(msg.Err))
		}
		return m, nil

	default:
		panic(fmt.Sprintf("list: unhandled message %T", msg))
	}
}

func (m Model) loadPackages(msg LoadPackages) (Model, *Command) {
	m.generation = msg.Generation
	m.catalog = msg.Catalog
	m.catalogErr = msg.Err
	m.settings = msg.Settings
	m.deviceLabel = msg.DeviceLabel
	m.installed = nil
	m.rows = nil
	m.visible = nil
	m.cursor = 0
	m.status = ""

	if msg.Err != nil || m.deps.Lister == nil {
		m.loading = false
		m.rows = BuildRows(m.catalog, nil)
		return m.refresh(), nil
	}

	m.loading = true
	lister := m.deps.Lister
	gen := msg.Generation
	return m, &Command{
		Name:       CommandFetchInstalled,
		Generation: gen,
		Run: func(ctx context.Context) Msg {
			installed, err := lister.InstalledPackages(ctx)
			return InstalledLoaded{Generation: gen, Installed: installed, Err: err}
		},
	}
}

func (m Model) installedLoaded(msg InstalledLoaded) (Model, *Command) {
	if msg.Generation != m.generation {
		return m, nil
	}

	m.loading = false
	if msg.Err != nil {
		m.installed = nil
		m.status = "Could not read installed packages; showing the whole catalog"
		logging.Named("list").Warn("installed package fetch failed",
			zap.Uint64("generation", msg.Generation),
			zap.Error(msg.Err),
		)
	} else {
		m.installed = msg.Installed
	}
	m.rows = BuildRows(m.catalog, m.installed)
	m = m.refresh()

	if !m.settings.Notifications || m.deps.Notifier == nil {
		return m, nil
	}

	notifier := m.deps.Notifier
	gen := msg.Generation
	title := "debloater"
	body := fmt.Sprintf("%s: %d packages to review", labelOr(m.deviceLabel), len(m.rows))
	return m, &Command{
		Name:       CommandNotify,
		Generation: gen,
		Run: func(ctx context.Context) Msg {
			return NotifyDone{Generation: gen, Err: notifier.Notify(title, body)}
		},
	}
}

func (m Model) copySelection() (Model, *Command) {
	ids := m.Selected()
	if len(ids) == 0 {
		m.status = "Nothing selected"
		return m, nil
	}
	if m.deps.Clipboard == nil {
		m.status = "Clipboard not available"
		return m, nil
	}

	cb := m.deps.Clipboard
	text := strings.Join(ids, "\n")
	gen := m.generation
	return m, &Command{
		Name:       CommandCopy,
		Generation: gen,
		Run: func(ctx context.Context) Msg {
			return ClipboardDone{Generation: gen, Count: len(ids), Err: cb.WriteAll(text)}
		},
	}
}

func nextList(lists []string, current string) string {
	if current == "" {
		if len(lists) == 0 {
			return ""
		}
		return lists[0]
	}
	for i, l := range lists {
		if l == current && i+1 < len(lists) {
			return lists[i+1]
		}
	}
	return ""
}

func labelOr(label string) string {
	if label == "" {
		return "Device"
	}
	return label
}
