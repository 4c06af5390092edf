package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/debloater/internal/app"
	"github.com/muurk/debloater/internal/app/list"
	"github.com/muurk/debloater/internal/app/view"
)

// renderer draws a display tree into terminal cells.
type renderer struct {
	width int
	// listRows bounds how many list items are drawn; the window follows the cursor.
	listRows int
	// search replaces the search input node while the field has focus.
	search string
	// spinner is prefixed to loading notices.
	spinner string
}

func (r renderer) node(n view.Node, width int) string {
	switch n.Kind {
	case view.KindColumn:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, r.node(c, width))
		}
		out := lipgloss.JoinVertical(lipgloss.Left, parts...)
		if n.ID == app.IDNav {
			return NavStyle.Width(width).Render(out)
		}
		return out

	case view.KindRow:
		out := r.row(n, width)
		if n.ID == app.IDNav {
			return NavStyle.Width(width).Render(out)
		}
		return out

	case view.KindText:
		return styleFor(n.Style).Render(truncate(n.Text, width))

	case view.KindButton:
		label := "[" + n.Text + "]"
		if n.Style == view.StyleActive {
			return ActiveButtonStyle.Render(label)
		}
		return ButtonStyle.Render(label)

	case view.KindToggle:
		box := "[ ] "
		if n.Checked {
			box = "[x] "
		}
		return ButtonStyle.Render(truncate(box+n.Text, width))

	case view.KindInput:
		if r.search != "" && n.ID == list.IDSearch {
			return r.search
		}
		if n.Text == "" {
			return MutedStyle.Render(truncate("/ "+n.Detail, width))
		}
		return truncate("/ "+n.Text, width)

	case view.KindNotice:
		text := n.Text
		if n.Text == list.LoadingText && r.spinner != "" {
			text = r.spinner + " " + text
		}
		style := NoticeStyle.BorderForeground(colorFor(n.Style)).Foreground(colorFor(n.Style))
		return style.Width(max(width-2, 1)).Render(text)

	case view.KindList:
		return r.list(n, width)

	case view.KindItem:
		return item(n, width)

	case view.KindSpacer:
		return ""

	default:
		return ""
	}
}

// row lays children out left to right; spacers share the remaining width.
func (r renderer) row(n view.Node, width int) string {
	parts := make([]string, len(n.Children))
	used, spacers := 0, 0
	for i, c := range n.Children {
		if c.Kind == view.KindSpacer {
			spacers++
			continue
		}
		parts[i] = r.node(c, width)
		used += lipgloss.Width(parts[i])
	}
	gaps := len(n.Children) - 1
	if gaps > 0 {
		used += gaps
	}

	free := width - used
	for i, c := range n.Children {
		if c.Kind != view.KindSpacer {
			continue
		}
		fill := 0
		if spacers > 0 && free > 0 {
			fill = free / spacers
		}
		parts[i] = strings.Repeat(" ", fill)
	}

	return strings.Join(parts, " ")
}

func (r renderer) list(n view.Node, width int) string {
	items := n.Children
	if len(items) == 0 {
		return ""
	}

	cursor := 0
	for i, it := range items {
		if it.Cursor {
			cursor = i
			break
		}
	}

	start, end := window(len(items), cursor, r.listRows)
	lines := make([]string, 0, end-start+1)
	for _, it := range items[start:end] {
		lines = append(lines, item(it, width))
	}
	if start > 0 || end < len(items) {
		lines = append(lines, MutedStyle.Render(truncate(scrollHint(start, end, len(items)), width)))
	}
	return strings.Join(lines, "\n")
}

// window returns the [start, end) slice of n rows that keeps cursor visible.
func window(n, cursor, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}

func scrollHint(start, end, total int) string {
	return fmt.Sprintf("  rows %d-%d of %d", start+1, end, total)
}

// item draws one list row: cursor marker, checkbox, id and detail.
func item(n view.Node, width int) string {
	marker := "  "
	if n.Cursor {
		marker = "> "
	}
	box := "[ ] "
	if n.Checked {
		box = "[x] "
	}

	idWidth := width / 2
	if idWidth > 48 {
		idWidth = 48
	}
	id := runewidth.FillRight(runewidth.Truncate(n.Text, idWidth, "…"), idWidth)
	detailWidth := width - runewidth.StringWidth(marker+box) - idWidth - 1
	detail := ""
	if detailWidth > 0 {
		detail = runewidth.Truncate(n.Detail, detailWidth, "…")
	}

	line := marker + box + id + " "
	switch {
	case n.Cursor:
		return CursorItemStyle.Render(line) + MutedStyle.Render(detail)
	case n.Checked:
		return CheckedStyle.Render(line) + MutedStyle.Render(detail)
	default:
		return line + MutedStyle.Render(detail)
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

func styleFor(s view.Style) lipgloss.Style {
	switch s {
	case view.StyleTitle:
		return TitleStyle
	case view.StyleMuted:
		return MutedStyle
	case view.StyleError:
		return ErrorStyle
	case view.StyleWarning:
		return WarningStyle
	case view.StyleInfo:
		return InfoStyle
	case view.StyleActive:
		return ActiveButtonStyle
	default:
		return lipgloss.NewStyle()
	}
}

func colorFor(s view.Style) lipgloss.Color {
	switch s {
	case view.StyleError:
		return ErrorColor
	case view.StyleWarning:
		return WarningColor
	case view.StyleInfo:
		return SecondaryColor
	default:
		return SubtleColor
	}
}
