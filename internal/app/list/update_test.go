package list

import (
	"context"
	"errors"
	"testing"

	"github.com/muurk/debloater/internal/app/settings"
	"github.com/muurk/debloater/internal/app/view"
	"github.com/muurk/debloater/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	installed []string
	err       error
}

func (f fakeLister) InstalledPackages(ctx context.Context) ([]string, error) {
	return f.installed, f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return f.err
}

type fakeNotifier struct {
	title, body string
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.title, f.body = title, body
	return nil
}

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		"com.android.chrome":     {ID: "com.android.chrome", List: "Google", Description: "Chrome browser", Removal: catalog.Advanced},
		"com.android.bips":       {ID: "com.android.bips", List: "Aosp", Description: "Print service", Removal: catalog.Recommended},
		"com.google.android.gms": {ID: "com.google.android.gms", List: "Google", Description: "Play Services", Removal: catalog.Unsafe},
	}
}

// run executes cmd synchronously and feeds its message back.
func run(t *testing.T, m Model, cmd *Command) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd.Run(context.Background())
	require.NotNil(t, msg)
	m, _ = m.Update(msg)
	return m
}

func ids(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Package.ID
	}
	return out
}

func TestLoadWithoutLister(t *testing.T) {
	m, cmd := New(Deps{}).Update(LoadPackages{Generation: 1, Catalog: testCatalog(), Settings: settings.Defaults()})

	assert.Nil(t, cmd)
	assert.False(t, m.Loading())
	assert.Len(t, m.Rows(), 3)
	// Unsafe is hidden outside expert mode
	assert.Equal(t, []string{"com.android.bips", "com.android.chrome"}, ids(m.Visible()))
}

func TestLoadFetchesInstalled(t *testing.T) {
	lister := fakeLister{installed: []string{"com.android.chrome", "com.vendor.unknown"}}
	m, cmd := New(Deps{Lister: lister}).Update(LoadPackages{Generation: 7, Catalog: testCatalog()})

	require.NotNil(t, cmd)
	assert.Equal(t, CommandFetchInstalled, cmd.Name)
	assert.Equal(t, uint64(7), cmd.Generation)
	assert.True(t, m.Loading())
	assert.Contains(t, m.Render().PlainText(), LoadingText)

	m = run(t, m, cmd)
	assert.False(t, m.Loading())
	assert.Equal(t, []string{"com.android.chrome", "com.vendor.unknown"}, ids(m.Visible()))
	assert.Equal(t, catalog.Unlisted, m.Visible()[1].Package.Removal)
	assert.True(t, m.Visible()[0].Installed)
}

func TestInstalledLoadedStaleIgnored(t *testing.T) {
	m, _ := New(Deps{Lister: fakeLister{}}).Update(LoadPackages{Generation: 2, Catalog: testCatalog()})

	m, cmd := m.Update(InstalledLoaded{Generation: 1, Installed: []string{"com.android.chrome"}})
	assert.Nil(t, cmd)
	assert.True(t, m.Loading(), "stale result must not finish the load")
	assert.Empty(t, m.Rows())
}

func TestInstalledFetchFailureShowsCatalog(t *testing.T) {
	m, cmd := New(Deps{Lister: fakeLister{err: errors.New("device offline")}}).
		Update(LoadPackages{Generation: 1, Catalog: testCatalog()})

	m = run(t, m, cmd)
	assert.Len(t, m.Rows(), 3)
	assert.NotEmpty(t, m.Status())
}

func TestCatalogErrorRendersNotice(t *testing.T) {
	m, cmd := New(Deps{Lister: fakeLister{}}).Update(LoadPackages{Generation: 1, Err: errors.New("bad json")})

	assert.Nil(t, cmd)
	assert.Empty(t, m.Rows())

	body := m.Render()
	var notice view.Node
	body.Walk(func(n view.Node) bool {
		if n.Kind == view.KindNotice {
			notice = n
			return false
		}
		return true
	})
	assert.Equal(t, view.StyleError, notice.Style)
	assert.Contains(t, notice.Text, "bad json")
}

func TestEmptyCatalogRendersNotice(t *testing.T) {
	m, _ := New(Deps{}).Update(LoadPackages{Generation: 1, Catalog: catalog.Catalog{}})
	assert.Contains(t, m.Render().PlainText(), EmptyCatalogText)
}

func TestFiltersAndSettings(t *testing.T) {
	m, _ := New(Deps{}).Update(LoadPackages{Generation: 1, Catalog: testCatalog()})

	m, _ = m.Update(ApplySettings{Settings: settings.Values{ExpertMode: true, SortBy: settings.SortByTier}})
	assert.Equal(t, []string{"com.android.bips", "com.android.chrome", "com.google.android.gms"}, ids(m.Visible()))

	m, _ = m.Update(CycleTier{}) // Recommended
	assert.Equal(t, []string{"com.android.bips"}, ids(m.Visible()))
	for range catalog.Removals {
		m, _ = m.Update(CycleTier{})
	}
	_, filtered := m.TierFilter()
	assert.False(t, filtered, "cycling past the last tier returns to all")

	m, _ = m.Update(CycleList{}) // Aosp
	assert.Equal(t, "Aosp", m.ListFilter())
	m, _ = m.Update(CycleList{}) // Google
	assert.Equal(t, []string{"com.android.chrome", "com.google.android.gms"}, ids(m.Visible()))
	m, _ = m.Update(CycleList{})
	assert.Equal(t, "", m.ListFilter())

	m, _ = m.Update(SetQuery{Query: "tier:unsafe"})
	assert.Equal(t, []string{"com.google.android.gms"}, ids(m.Visible()))

	m, _ = m.Update(SetQuery{Query: "tier:bogus"})
	assert.Error(t, m.QueryErr())
	assert.Equal(t, []string{"com.google.android.gms"}, ids(m.Visible()), "invalid query keeps the last good one")
}

func TestCursorAndSelection(t *testing.T) {
	m, _ := New(Deps{}).Update(LoadPackages{Generation: 1, Catalog: testCatalog()})

	m, _ = m.Update(MoveCursor{Delta: 5})
	assert.Equal(t, 1, m.Cursor())
	m, _ = m.Update(MoveCursor{Delta: -9})
	assert.Equal(t, 0, m.Cursor())

	before := m
	m, _ = m.Update(ToggleSelected{})
	assert.Equal(t, []string{"com.android.bips"}, m.Selected())
	assert.Empty(t, before.Selected(), "selection must not leak into earlier models")

	m, _ = m.Update(ToggleSelected{ID: "com.android.bips"})
	assert.Empty(t, m.Selected())

	m, _ = m.Update(SelectAllVisible{})
	assert.Len(t, m.Selected(), 2)
	m, _ = m.Update(ClearSelection{})
	assert.Empty(t, m.Selected())
}

func TestCopySelection(t *testing.T) {
	cb := &fakeClipboard{}
	m, _ := New(Deps{Clipboard: cb}).Update(LoadPackages{Generation: 1, Catalog: testCatalog()})

	m, cmd := m.Update(CopySelection{})
	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing selected", m.Status())

	m, _ = m.Update(SelectAllVisible{})
	m, cmd = m.Update(CopySelection{})
	require.NotNil(t, cmd)
	assert.Equal(t, CommandCopy, cmd.Name)

	m = run(t, m, cmd)
	assert.Equal(t, "com.android.bips\ncom.android.chrome", cb.text)
	assert.Contains(t, m.Status(), "Copied 2")
}

func TestCommandResultsFromOldLoadIgnored(t *testing.T) {
	cb := &fakeClipboard{}
	m, _ := New(Deps{Clipboard: cb}).Update(LoadPackages{Generation: 1, Catalog: testCatalog()})
	m, _ = m.Update(SelectAllVisible{})
	m, cmd := m.Update(CopySelection{})
	require.NotNil(t, cmd)
	done := cmd.Run(context.Background())
	assert.Equal(t, uint64(1), done.(ClipboardDone).Stamp())

	m, _ = m.Update(LoadPackages{Generation: 2, Catalog: testCatalog()})
	m, cmd = m.Update(done)
	assert.Nil(t, cmd)
	assert.Empty(t, m.Status())

	m, cmd = m.Update(NotifyDone{Generation: 1, Err: errors.New("dbus unavailable")})
	assert.Nil(t, cmd)
	assert.Empty(t, m.Status())
	assert.Len(t, m.Visible(), 2)
}

func TestNotificationAfterLoad(t *testing.T) {
	n := &fakeNotifier{}
	deps := Deps{Lister: fakeLister{installed: []string{"com.android.chrome"}}, Notifier: n}
	m, cmd := New(deps).Update(LoadPackages{
		Generation:  1,
		Catalog:     testCatalog(),
		Settings:    settings.Values{Notifications: true},
		DeviceLabel: "Google Pixel 6",
	})

	m, cmd = m.Update(cmd.Run(context.Background()))
	require.NotNil(t, cmd)
	assert.Equal(t, CommandNotify, cmd.Name)

	_ = run(t, m, cmd)
	assert.Equal(t, "Google Pixel 6: 1 packages to review", n.body)
}

func TestResetKeepsDeps(t *testing.T) {
	lister := fakeLister{}
	m, _ := New(Deps{Lister: lister}).Update(LoadPackages{Generation: 3, Catalog: testCatalog()})

	r := m.Reset()
	assert.True(t, r.Loading())
	assert.Equal(t, uint64(0), r.Generation())
	_, cmd := r.Update(LoadPackages{Generation: 4, Catalog: testCatalog()})
	assert.NotNil(t, cmd, "reset list should still fetch installed packages")
}

func TestRenderRowsCarryToggle(t *testing.T) {
	m, _ := New(Deps{}).Update(LoadPackages{Generation: 1, Catalog: testCatalog()})
	tree := m.Render()

	row, ok := tree.Find("row.com.android.chrome")
	require.True(t, ok)
	assert.Equal(t, ToggleSelected{ID: "com.android.chrome"}, row.OnPress)
	assert.Contains(t, row.Detail, "Advanced")

	_, ok = tree.Find(IDSearch)
	assert.True(t, ok)
}
