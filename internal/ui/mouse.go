package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/table"
)

// dragState tracks a column divider grabbed on the header row.
type dragState struct {
	column table.ColumnID
	startX int
}

// handleMouse resizes a column when its right divider is dragged along the
// header row, and cycles the sort when a column title is clicked.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.dialog != nil || m.state.Phase != state.Ready {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != tableHeaderY {
			return m, nil
		}
		col, divider, ok := m.hitColumn(msg.X)
		if !ok {
			return m, nil
		}
		specs := m.state.Specs()
		m.focusCol = col
		if divider {
			m.drag = &dragState{column: specs[col].ID, startX: msg.X}
			return m, nil
		}
		return m.sortColumn(col)

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		drag := m.drag
		m.drag = nil
		delta := unitsForCells(msg.X-drag.startX, m.width-2, len(m.state.Specs()), m.state.Layout.Budget())
		return m.resizeColumn(drag.column, delta)
	}

	return m, nil
}

// hitColumn maps a screen x on the header row to a column index. divider
// is true when x is the divider to the right of that column.
func (m Model) hitColumn(x int) (col int, divider bool, ok bool) {
	cols := m.state.View().Columns
	widths := cellWidths(cols, m.width-2, m.state.Layout.Budget())

	pos := 1 // left border
	for i, w := range widths {
		if x >= pos && x < pos+w {
			return i, false, true
		}
		pos += w
		if i < len(widths)-1 && x == pos {
			return i, true, true
		}
		pos++
	}
	return 0, false, false
}
