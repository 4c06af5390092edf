// Package about is the About screen. It has no state of its own.
package about

import (
	"github.com/muurk/debloater/internal/app/view"
	"github.com/muurk/debloater/internal/urls"
	"github.com/muurk/debloater/internal/version"
)

// Model is the About screen.
type Model struct{}

// New returns the About screen.
func New() Model {
	return Model{}
}

// Render draws the screen.
func (Model) Render() view.Node {
	return view.Column(
		view.Styled(view.StyleTitle, "debloater "+version.Get().String()),
		view.Text("Review and select preinstalled Android packages that are safe to remove."),
		view.Spacer(),
		view.Styled(view.StyleMuted, "Project: "+urls.Project),
		view.Styled(view.StyleMuted, "Documentation: "+urls.Documentation),
		view.Styled(view.StyleMuted, "Report a package: "+urls.CatalogIssues),
		view.Spacer(),
		view.Text("Package descriptions come from the Universal Android Debloater community list:"),
		view.Styled(view.StyleMuted, urls.CatalogUpstream),
	)
}
