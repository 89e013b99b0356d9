package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/roster/internal/table"
)

// detailDialog shows every populated field of one user in a scrollable
// viewport. y copies the fields as plain text.
type detailDialog struct {
	row      table.Row
	fields   []table.Field
	viewport viewport.Model
	copy     func(string) error
	logger   *slog.Logger
	notice   string
	failed   bool // notice reports a copy error
}

func newDetailDialog(row table.Row, width, height int, copyFn func(string) error, logger *slog.Logger) *detailDialog {
	d := &detailDialog{
		row:      row,
		fields:   table.Detail(row),
		viewport: viewport.New(0, 0),
		copy:     copyFn,
		logger:   logger,
	}
	d.SetSize(width, height)
	return d
}

// SetSize implements Modal. The scroll offset is kept where it still fits.
func (d *detailDialog) SetSize(width, height int) {
	boxWidth := min(detailMaxWidth, max(width-4, 20))
	// border, padding, title, rule, blank line and hint line
	vpHeight := max(min(len(d.fields), height-10), 1)

	offset := d.viewport.YOffset
	d.viewport.Width = boxWidth - 6
	d.viewport.Height = vpHeight
	d.viewport.SetContent(formatFields(d.fields, boxWidth-6))
	d.viewport.SetYOffset(offset)
}

// Update implements Modal.
func (d *detailDialog) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Close):
			return d, nil, true
		case key.Matches(msg, keys.Copy):
			d.copyDetails()
			return d, nil, false
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd, false
}

func (d *detailDialog) copyDetails() {
	if d.copy == nil {
		return
	}
	if err := d.copy(table.DetailText(d.row)); err != nil {
		d.logger.Warn("copy user details", "error", err, "user", d.row.Key)
		d.notice = "copy failed: " + err.Error()
		d.failed = true
		return
	}
	d.logger.Info("copied user details", "user", d.row.Key)
	d.notice = "copied to clipboard"
	d.failed = false
}

// View implements Modal.
func (d *detailDialog) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	boxWidth := d.viewport.Width + 6

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("#%d  %s", d.row.Key, d.row.Name)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", d.viewport.Width)))
	b.WriteString("\n")
	b.WriteString(d.viewport.View())
	b.WriteString("\n\n")

	hint := styles.AccentText.Render("y") + styles.MutedText.Render(" copy  ") +
		styles.AccentText.Render("esc") + styles.MutedText.Render(" close")
	if d.viewport.TotalLineCount() > d.viewport.Height {
		hint += styles.FaintText.Render(fmt.Sprintf("  %3.f%%", d.viewport.ScrollPercent()*100))
	}
	if d.notice != "" {
		hint += "  " + d.noticeStyle(styles).Render(d.notice)
	}
	b.WriteString(hint)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(boxWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func (d *detailDialog) noticeStyle(styles Styles) lipgloss.Style {
	if d.failed {
		return styles.DangerText
	}
	return styles.SuccessText
}

// formatFields aligns labels in one column and truncates values to width.
func formatFields(fields []table.Field, width int) string {
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, runewidth.StringWidth(f.Label))
	}
	lines := make([]string, len(fields))
	for i, f := range fields {
		label := runewidth.FillRight(f.Label, labelWidth)
		lines[i] = label + "  " + truncate(f.Value, width-labelWidth-2)
	}
	return strings.Join(lines, "\n")
}
