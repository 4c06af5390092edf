package list

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/gen2brain/beeep"
)

// PackageLister returns the package ids installed on the device.
type PackageLister interface {
	InstalledPackages(ctx context.Context) ([]string, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Notifier posts a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// Deps are the List screen's collaborators. Nil fields disable the feature.
type Deps struct {
	Lister    PackageLister
	Clipboard Clipboard
	Notifier  Notifier
}

// SystemClipboard uses the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// DesktopNotifier posts OS notifications.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}
