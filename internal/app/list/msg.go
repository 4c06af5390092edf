package list

import (
	"github.com/muurk/debloater/internal/app/settings"
	"github.com/muurk/debloater/internal/catalog"
)

// Msg is a List screen message.
type Msg interface{ listMsg() }

// Stamped is a message produced by a command. The controller drops it when its
// generation is no longer current.
type Stamped interface {
	Msg
	Stamp() uint64
}

// LoadPackages starts populating the list for a new load.
type LoadPackages struct {
	Generation  uint64
	Catalog     catalog.Catalog
	Err         error
	Settings    settings.Values
	DeviceLabel string
}

// InstalledLoaded carries the installed package ids fetched from the device.
// A nil Installed with a nil Err means the set is unknown.
type InstalledLoaded struct {
	Generation uint64
	Installed  []string
	Err        error
}

// ApplySettings replaces the settings snapshot.
type ApplySettings struct {
	Settings settings.Values
}

// SetQuery replaces the search query.
type SetQuery struct {
	Query string
}

// MoveCursor moves the cursor by Delta rows, clamped to the visible rows.
type MoveCursor struct {
	Delta int
}

// ToggleSelected flips the selection of the row with ID, or of the row under
// the cursor when ID is empty.
type ToggleSelected struct {
	ID string
}

type (
	// CycleTier steps the removal tier filter: all, then each tier in order.
	CycleTier struct{}
	// CycleList steps the vendor list filter: all, then each list name.
	CycleList        struct{}
	SelectAllVisible struct{}
	ClearSelection   struct{}
	// CopySelection writes the selected ids to the system clipboard.
	CopySelection struct{}
)

// ClipboardDone reports the outcome of CopySelection.
type ClipboardDone struct {
	Generation uint64
	Count      int
	Err        error
}

// NotifyDone reports the outcome of the load notification.
type NotifyDone struct {
	Generation uint64
	Err        error
}

func (LoadPackages) listMsg()     {}
func (InstalledLoaded) listMsg()  {}
func (ApplySettings) listMsg()    {}
func (SetQuery) listMsg()         {}
func (MoveCursor) listMsg()       {}
func (ToggleSelected) listMsg()   {}
func (CycleTier) listMsg()        {}
func (CycleList) listMsg()        {}
func (SelectAllVisible) listMsg() {}
func (ClearSelection) listMsg()   {}
func (CopySelection) listMsg()    {}
func (ClipboardDone) listMsg()    {}
func (NotifyDone) listMsg()       {}

func (m InstalledLoaded) Stamp() uint64 { return m.Generation }
func (m ClipboardDone) Stamp() uint64   { return m.Generation }
func (m NotifyDone) Stamp() uint64      { return m.Generation }
