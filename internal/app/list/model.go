// Package list is the package List screen: the catalog entries found on the
// connected device, filtered and sorted for review, with a selection the user
// can copy out.
package list

import (
	"sort"

	"github.com/muurk/debloater/internal/app/settings"
	"github.com/muurk/debloater/internal/catalog"
)

// UnlistedList is the vendor list shown for installed packages the catalog
// does not know.
const UnlistedList = "Unlisted"

// Row is one package shown in the list.
type Row struct {
	Package   catalog.Package
	Installed bool
}

// Model is the List screen state. It is a value: Update returns a new Model
// and never mutates maps or slices shared with an earlier one.
type Model struct {
	deps Deps

	generation  uint64
	loading     bool
	catalogErr  error
	deviceLabel string
	catalog     catalog.Catalog
	installed   []string

	rows     []Row
	visible  []Row
	cursor   int
	selected map[string]bool

	query    string
	compiled Query
	queryErr error

	// tierFilter is -1 for all tiers.
	tierFilter catalog.Removal
	listFilter string

	settings settings.Values
	status   string
}

// New returns an empty List waiting for its first load.
func New(deps Deps) Model {
	return Model{
		deps:       deps,
		loading:    true,
		tierFilter: -1,
		settings:   settings.Defaults(),
	}
}

// Reset returns a fresh List that keeps only the collaborators.
func (m Model) Reset() Model {
	return New(m.deps)
}

func (m Model) Generation() uint64        { return m.generation }
func (m Model) Loading() bool             { return m.loading }
func (m Model) CatalogErr() error         { return m.catalogErr }
func (m Model) Query() string             { return m.query }
func (m Model) QueryErr() error           { return m.queryErr }
func (m Model) Status() string            { return m.status }
func (m Model) Cursor() int               { return m.cursor }
func (m Model) Settings() settings.Values { return m.settings }
func (m Model) Rows() []Row               { return m.rows }
func (m Model) Visible() []Row            { return m.visible }

// TierFilter returns the active tier filter and whether one is set.
func (m Model) TierFilter() (catalog.Removal, bool) {
	return m.tierFilter, m.tierFilter >= 0
}

// ListFilter returns the active vendor list filter, "" for all.
func (m Model) ListFilter() string {
	return m.listFilter
}

// Selected returns the selected package ids in order.
func (m Model) Selected() []string {
	ids := make([]string, 0, len(m.selected))
	for id, on := range m.selected {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// IsSelected reports whether id is selected.
func (m Model) IsSelected(id string) bool {
	return m.selected[id]
}

// BuildRows joins the catalog with the installed set. A nil installed set
// lists every catalog entry.
func BuildRows(c catalog.Catalog, installed []string) []Row {
	if installed == nil {
		rows := make([]Row, 0, c.Len())
		for _, p := range c.Sorted() {
			rows = append(rows, Row{Package: p})
		}
		return rows
	}

	rows := make([]Row, 0, len(installed))
	for _, id := range installed {
		p, ok := c.Get(id)
		if !ok {
			p = catalog.Package{ID: id, List: UnlistedList, Removal: catalog.Unlisted}
		}
		rows = append(rows, Row{Package: p, Installed: true})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Package.ID < rows[j].Package.ID })
	return rows
}

// refresh recomputes the visible rows and clamps the cursor.
func (m Model) refresh() Model {
	var visible []Row
	for _, r := range m.rows {
		if !m.settings.ExpertMode && (r.Package.Removal == catalog.Expert || r.Package.Removal == catalog.Unsafe) {
			continue
		}
		if m.tierFilter >= 0 && r.Package.Removal != m.tierFilter {
			continue
		}
		if m.listFilter != "" && r.Package.List != m.listFilter {
			continue
		}
		if !m.compiled.Match(r) {
			continue
		}
		visible = append(visible, r)
	}

	if m.settings.SortBy == settings.SortByTier {
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Package.Removal < visible[j].Package.Removal
		})
	}

	m.visible = visible
	m.cursor = clamp(m.cursor, len(visible))
	return m
}

func clamp(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// lists returns the vendor list names present in the rows.
func (m Model) lists() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range m.rows {
		if _, ok := seen[r.Package.List]; ok {
			continue
		}
		seen[r.Package.List] = struct{}{}
		out = append(out, r.Package.List)
	}
	sort.Strings(out)
	return out
}
