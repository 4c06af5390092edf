package catalog

import "fmt"

// ParseError reports a catalog file that could not be decoded.
type ParseError struct {
	// Source is the file path, or "embedded" for the bundled catalog
	Source string
	// Format is the detected MIME type
	Format string
	// Underlying error
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse catalog %s (%s): %v", e.Source, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
