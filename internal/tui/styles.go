package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/debloater/internal/urls"
	"github.com/muurk/debloater/internal/version"
)

// Application branding constants
const (
	AppName = "DEBLOATER"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Get().Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 72 // Minimum supported terminal width
	MinTerminalHeight = 20 // Minimum supported terminal height

	// Rows taken by the container chrome: outer border, header, footer.
	chromeHeight = 8
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#FF8B94") // Pink
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Node styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	InfoStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	ActiveButtonStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true).
				Underline(true)

	// List row under the cursor
	CursorItemStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	CheckedStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	NoticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginTop(1)

	NavStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.Border{Bottom: "─"}).
			BorderForeground(SubtleColor).
			MarginBottom(1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)
)

// BuildHeaderContent creates header content with app name and project URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(urls.Project)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the application frame:
// header (name, version, URL), content, and a footer with key help, inside a
// border filling the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	header := BuildHeaderContent()
	footer := BuildFooterContent(footerText)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Height(contentHeight(terminalHeight)).
		Padding(0, 1)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// RenderTooSmall replaces the UI when the terminal is below the minimum size.
func RenderTooSmall(width, height int) string {
	msg := WarningStyle.Render("Terminal too small") + "\n" +
		MutedStyle.Render("debloater needs at least 72x20 cells")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// contentHeight is the number of rows available to a screen body.
func contentHeight(terminalHeight int) int {
	h := terminalHeight - chromeHeight
	if h < 1 {
		return 1
	}
	return h
}

// contentWidth is the number of cells available to a screen body.
func contentWidth(terminalWidth int) int {
	w := terminalWidth - 6
	if w < 1 {
		return 1
	}
	return w
}
