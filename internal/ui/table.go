package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/roster/internal/dummyjson"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/table"
)

// cellWidths scales layout units to terminal cells for a table body that is
// inner cells wide. One cell per column boundary is reserved for the divider.
func cellWidths(cols []table.Column, inner, budget int) []int {
	out := make([]int, len(cols))
	usable := inner - (len(cols) - 1)
	for i, c := range cols {
		w := 1
		if budget > 0 && usable > 0 {
			w = max(c.Width*usable/budget, 1)
		}
		out[i] = w
	}
	return out
}

// unitsForCells converts a cell delta back to layout units.
func unitsForCells(cells, inner, columns, budget int) int {
	usable := inner - (columns - 1)
	if usable <= 0 {
		return 0
	}
	return cells * budget / usable
}

// renderTable renders the roster box: column titles, the current page and
// the pagination footer.
func (m Model) renderTable() string {
	view := m.state.View()
	height := m.height - headerLines
	inner := m.width - 2
	styles := m.theme.Styles()

	var body string
	switch {
	case view.Phase == state.Idle || view.Loading:
		body = lipgloss.Place(inner, height-2, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+styles.MutedText.Render("Loading users..."))
	case view.Phase == state.Failed:
		body = lipgloss.Place(inner, height-2, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				styles.DangerText.Render(dummyjson.Describe(view.Err)),
				styles.MutedText.Render(truncate(view.Err.Error(), inner-4)),
				"",
				styles.FaintText.Render("press c to retry")))
	default:
		body = m.renderRows(view, inner, height-2)
	}

	return m.renderTitledBox(m.tableTitle(view), body, m.width, height, view.Phase == state.Ready)
}

func (m Model) tableTitle(view state.View) string {
	if view.Query != "" {
		return fmt.Sprintf("Users (%d/%d)", view.TotalFiltered, view.Total)
	}
	return fmt.Sprintf("Users (%d)", view.Total)
}

// renderRows lays out the header line, one line per row and a footer,
// padding the gap so the footer sits on the last line.
func (m Model) renderRows(view state.View, inner, height int) string {
	widths := cellWidths(view.Columns, inner, m.state.Layout.Budget())
	lines := []string{m.renderColumnHeader(view.Columns, widths, inner)}

	if len(view.Rows) == 0 {
		styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
		msg := "No users"
		if view.Query != "" {
			msg = fmt.Sprintf("No users match %q", view.Query)
		}
		lines = append(lines, styles.MutedText.Render(msg))
	}
	for i, row := range view.Rows {
		lines = append(lines, m.renderRow(view.Columns, widths, row, i == m.cursor, inner))
	}

	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderFooter(view, inner))
	return strings.Join(lines, "\n")
}

func (m Model) renderColumnHeader(cols []table.Column, widths []int, inner int) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	styles := m.theme.Styles()
	divider := bg.Render("│", lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border)))

	parts := make([]string, len(cols))
	for i, c := range cols {
		style := styles.Text.Bold(true)
		cellBg := bg
		if i == m.focusCol {
			cellBg = NewBgStyle(m.theme.FocusBg)
			style = styles.AccentText.Bold(true)
		}
		parts[i] = cellBg.Cell(columnTitle(c), widths[i], c.Align, style)
	}
	return bg.FillLine(strings.Join(parts, divider), inner)
}

func (m Model) renderRow(cols []table.Column, widths []int, row table.Row, selected bool, inner int) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = fitCell(cellValue(c, row), widths[i], c.Align)
	}
	line := strings.Join(cells, " ")

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Foreground(lipgloss.Color(m.theme.Text))
	if selected {
		style = m.theme.Styles().Selected
	}
	return style.Width(inner).Render(line)
}

func (m Model) renderFooter(view state.View, inner int) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	styles := m.theme.Styles()

	pager := m.pager
	pager.TotalPages = view.PageCount
	pager.Page = view.Page - 1
	if view.PageCount > 10 {
		pager.Type = paginator.Arabic
	}

	info := fmt.Sprintf("page %d/%d", view.Page, view.PageCount)
	if view.Page > view.PageCount {
		info = fmt.Sprintf("page %d (past the last page, %d)", view.Page, view.PageCount)
	}
	parts := []string{
		pager.View(),
		bg.Render(info, styles.MutedText),
		bg.Render(fmt.Sprintf("%d per page", view.PageSize), styles.FaintText),
	}
	if view.Sort.Active() {
		parts = append(parts, bg.Render(fmt.Sprintf("sorted by %s %s", view.Sort.Column, view.Sort.Direction), styles.FaintText))
	}
	return bg.FillLine(bg.Join(parts, "  "), inner)
}

// columnTitle decorates the title with the active sort direction.
func columnTitle(c table.Column) string {
	switch c.Direction {
	case table.Ascending:
		return c.Title + " ▲"
	case table.Descending:
		return c.Title + " ▼"
	default:
		return c.Title
	}
}

// cellValue is the display text of a cell. Gender is shown title-cased.
func cellValue(c table.Column, row table.Row) string {
	v := c.Value(row)
	if c.ID == table.ColumnGender {
		return cases.Title(language.English).String(v)
	}
	return v
}
