package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/roster/internal/dummyjson"
	"github.com/five82/roster/internal/state"
)

// renderHeader renders the status line: phase, counts, freshness and any
// transient notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	view := m.state.View()

	phase := view.Phase.String()
	if view.Phase == state.Ready && view.Warning != nil {
		phase = "warning"
	}

	parts := []string{
		bg.Render("roster", styles.Logo),
		styles.PhaseStyle(phase).Render(strings.ToUpper(phase)),
	}

	switch view.Phase {
	case state.Loading:
		parts = append(parts, m.spinner.View()+bg.Render("fetching users", styles.InfoText))
	case state.Failed:
		parts = append(parts,
			bg.Render(dummyjson.Describe(view.Err), styles.DangerText),
			bg.Render("c", styles.AccentText)+bg.Sep(":")+bg.Render("retry", styles.MutedText))
	case state.Ready:
		count := fmt.Sprintf("%d users", view.Total)
		if view.Query != "" {
			count = fmt.Sprintf("%d of %d users", view.TotalFiltered, view.Total)
		}
		parts = append(parts, bg.Render(count, styles.Text))
		if view.Warning != nil {
			parts = append(parts, bg.Render(view.Warning.Error(), styles.WarningText))
		}
		if !view.FetchedAt.IsZero() && !compact {
			parts = append(parts, bg.Render("fetched "+humanize.Time(view.FetchedAt), styles.MutedText))
		}
	}

	if !compact && m.endpoint != "" {
		parts = append(parts, bg.Render(truncate(m.endpoint, 40), styles.FaintText))
	}
	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar shows the search box while searching, otherwise the key
// hints and the active query.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.searching {
		hint := bg.Render("enter", styles.AccentText) + bg.Sep(":") + bg.Render("keep", styles.MutedText) +
			bg.Spaces(2) + bg.Render("esc", styles.AccentText) + bg.Sep(":") + bg.Render("clear", styles.MutedText)
		return styles.Header.Width(m.width).Render(m.search.View() + bg.Spaces(2) + hint)
	}

	segments := []string{m.help.ShortHelpView(m.keys.ShortHelp())}
	if m.state.Query != "" {
		segments = append(segments, bg.Render("/"+truncate(m.state.Query, 18), styles.AccentText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+bg.Sep(":")+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(segments, "  "))
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor := m.theme.Border
	if focused {
		borderColor = m.theme.BorderFocus
	}
	bg := NewBgStyle(m.theme.SurfaceAlt)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", max(innerWidth, 0)), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(max(innerWidth, 0)).Background(lipgloss.Color(m.theme.SurfaceAlt))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := range boxHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
