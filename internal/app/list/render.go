package list

import (
	"fmt"

	"github.com/muurk/debloater/internal/app/view"
)

// Node IDs the hosts address directly.
const (
	IDSearch = "list.search"
	IDRows   = "list.rows"
)

// Notice texts.
const (
	LoadingText      = "Loading packages..."
	EmptyCatalogText = "The package catalog is empty."
	NoMatchText      = "No packages match the current filters."
)

// Render draws the screen.
func (m Model) Render() view.Node {
	children := []view.Node{m.toolbar()}

	if m.queryErr != nil {
		children = append(children, view.Notice(view.StyleWarning, m.queryErr.Error()))
	}

	children = append(children, m.body())

	footer := fmt.Sprintf("%d shown, %d total, %d selected", len(m.visible), len(m.rows), len(m.Selected()))
	if m.settings.DisableMode {
		footer += " (disable mode)"
	}
	children = append(children, view.Styled(view.StyleMuted, footer))
	if m.status != "" {
		children = append(children, view.Styled(view.StyleInfo, m.status))
	}

	return view.Column(children...)
}

func (m Model) toolbar() view.Node {
	tier := "All"
	if t, ok := m.TierFilter(); ok {
		tier = t.String()
	}
	list := "All"
	if m.listFilter != "" {
		list = m.listFilter
	}

	return view.Row(
		view.Input(IDSearch, "tier:expert list:google installed words", m.query),
		view.Button("list.tier", "Tier: "+tier, CycleTier{}),
		view.Button("list.list", "List: "+list, CycleList{}),
		view.Spacer(),
		view.Button("list.select-all", "Select all", SelectAllVisible{}),
		view.Button("list.clear", "Clear", ClearSelection{}),
		view.Button("list.copy", "Copy", CopySelection{}),
	)
}

func (m Model) body() view.Node {
	switch {
	case m.catalogErr != nil:
		return view.Notice(view.StyleError, "Could not load the package catalog: "+m.catalogErr.Error())
	case m.loading:
		return view.Notice(view.StyleInfo, LoadingText)
	case m.catalog.Len() == 0 && len(m.rows) == 0:
		return view.Notice(view.StyleWarning, EmptyCatalogText)
	case len(m.visible) == 0:
		return view.Notice(view.StyleMuted, NoMatchText)
	}

	items := make([]view.Node, len(m.visible))
	for i, r := range m.visible {
		p := r.Package
		detail := fmt.Sprintf("%s | %s | %s", p.Removal, p.List, p.Description)
		items[i] = view.Item("row."+p.ID, p.ID, detail, m.selected[p.ID], i == m.cursor, ToggleSelected{ID: p.ID})
	}
	return view.List(IDRows, items...)
}
