// Package urls provides centralized constants for the project and upstream
// URLs shown in the About screen and CLI help.
//
// Usage:
//
//	import "github.com/muurk/debloater/internal/urls"
//
//	fmt.Printf("Report a package: %s\n", urls.CatalogIssues)
package urls
