package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/muurk/debloater/internal/logging"
	"gopkg.in/yaml.v3"
)

// EmbeddedSource names the bundled catalog in logs and errors.
const EmbeddedSource = "embedded"

//go:embed data/catalog.json
var embedded []byte

// Loader reads a catalog from Path, or the bundled catalog when Path is empty.
type Loader struct {
	Path string
}

// NewLoader creates a Loader for path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Source returns the path the loader reads from.
func (l *Loader) Source() string {
	if l == nil || l.Path == "" {
		return EmbeddedSource
	}
	return l.Path
}

// LoadCatalog reads and decodes the catalog.
func (l *Loader) LoadCatalog(ctx context.Context) (Catalog, error) {
	start := time.Now()
	source := l.Source()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := embedded
	if source != EmbeddedSource {
		b, err := os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("failed to read catalog: %w", err)
			logging.LogCatalogLoad(source, 0, time.Since(start), err)
			return nil, err
		}
		data = b
	}

	c, err := Parse(source, data)
	logging.LogCatalogLoad(source, c.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes data as JSON or YAML depending on its sniffed type.
// Both formats hold a sequence of Package entries.
func Parse(source string, data []byte) (Catalog, error) {
	mt := mimetype.Detect(data)

	var pkgs []Package
	var err error
	if mt.Is("application/json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&pkgs)
	} else if mt.Is("text/plain") {
		err = yaml.Unmarshal(data, &pkgs)
	} else {
		err = fmt.Errorf("unsupported content type")
	}
	if err != nil {
		return nil, &ParseError{Source: source, Format: mt.String(), Err: err}
	}

	c, err := FromPackages(pkgs)
	if err != nil {
		return nil, &ParseError{Source: source, Format: mt.String(), Err: err}
	}
	return c, nil
}
