package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/table"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.dialog != nil {
		return m.handleDialogKey(msg)
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.logger.Info("reset requested")
		return m.dispatch(state.ResetRequested{})

	case key.Matches(msg, m.keys.Search):
		if m.state.Phase != state.Ready {
			return m, nil
		}
		m.searching = true
		m.search.SetValue(m.state.Query)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.state.Query != "" {
			m.search.SetValue("")
			return m.dispatch(state.SearchChanged{})
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevColumn):
		m.focusCol = max(m.focusCol-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.NextColumn):
		m.focusCol = min(m.focusCol+1, len(m.state.Specs())-1)
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		return m.sortColumn(m.focusCol)

	case key.Matches(msg, m.keys.Shrink):
		return m.resizeFocused(-resizeStep)

	case key.Matches(msg, m.keys.Grow):
		return m.resizeFocused(resizeStep)

	case key.Matches(msg, m.keys.PrevPage):
		if m.state.Page.Page > 1 {
			return m.dispatch(state.PageChanged{Page: m.state.Page.Page - 1})
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.state.Page.Page < m.state.Page.PageCount(len(m.state.Filtered)) {
			return m.dispatch(state.PageChanged{Page: m.state.Page.Page + 1})
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.state.View().Rows) - 1
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m.openDetail()
	}

	return m, nil
}

// handleSearchInput feeds keys to the search box and filters on every change.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m.dispatch(state.SearchChanged{})
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if query := m.search.Value(); query != m.state.Query {
		var fetch tea.Cmd
		m, fetch = m.dispatch(state.SearchChanged{Query: query})
		return m, tea.Batch(cmd, fetch)
	}
	return m, cmd
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dialog, cmd, closed := m.dialog.Update(msg, m.keys)
	if !closed {
		m.dialog = dialog
		return m, cmd
	}
	m.dialog = nil
	m, dismiss := m.dispatch(state.DialogDismissed{})
	return m, tea.Batch(cmd, dismiss)
}

// sortColumn requests the next direction in the cycle for column i.
func (m Model) sortColumn(i int) (Model, tea.Cmd) {
	specs := m.state.Specs()
	if i < 0 || i >= len(specs) || m.state.Phase != state.Ready {
		return m, nil
	}
	spec := specs[i]
	if !spec.Sortable {
		m.notice = fmt.Sprintf("%s is not sortable", spec.Title)
		return m, nil
	}
	return m.dispatch(state.SortRequested{Column: spec.ID, Direction: m.state.NextSort(spec.ID)})
}

func (m Model) resizeFocused(delta int) (Model, tea.Cmd) {
	specs := m.state.Specs()
	if m.focusCol < 0 || m.focusCol >= len(specs) {
		return m, nil
	}
	return m.resizeColumn(specs[m.focusCol].ID, delta)
}

func (m Model) resizeColumn(id table.ColumnID, delta int) (Model, tea.Cmd) {
	width, ok := m.state.Layout.Width(id)
	if !ok || delta == 0 {
		return m, nil
	}
	return m.dispatch(state.ColumnResized{Column: id, Width: width + delta})
}

// openDetail selects the cursor row and shows its detail dialog.
func (m Model) openDetail() (Model, tea.Cmd) {
	rows := m.state.View().Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return m, nil
	}
	m, cmd := m.dispatch(state.RowActivated{Key: rows[m.cursor].Key})
	if m.state.Selected != nil {
		m.dialog = newDetailDialog(*m.state.Selected, m.width, m.height, m.copy, m.logger)
	}
	return m, cmd
}

func (m *Model) cycleTheme() {
	m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
	m.logger.Info("theme changed", "theme", m.theme.Name)
	if m.prefs == nil {
		return
	}
	if err := m.prefs.SaveTheme(m.theme.Name); err != nil {
		m.logger.Warn("save theme preference", "error", err, "path", m.prefs.Path())
	}
}
