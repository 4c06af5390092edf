package app

import (
	"context"

	"github.com/muurk/debloater/internal/app/list"
	"github.com/muurk/debloater/internal/catalog"
)

// DeviceQuerier identifies the connected device.
// adb.Client implements it.
type DeviceQuerier interface {
	DeviceLabel(ctx context.Context) (string, error)
}

// CatalogLoader produces the debloat catalog.
// catalog.Loader implements it.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) (catalog.Catalog, error)
}

// Deps are the controller's collaborators. Update never calls them; only
// the commands it returns do.
type Deps struct {
	Device  DeviceQuerier
	Catalog CatalogLoader
	List    list.Deps
}
