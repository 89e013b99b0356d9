package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/roster/internal/dummyjson"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/table"
)

// Format selects how Export writes rows.
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatRaw   Format = "raw"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatJSON, FormatRaw:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want plain, json or raw)", s)
	}
}

// ExportOptions drive the table engine without a terminal.
type ExportOptions struct {
	Query    string
	Sort     table.SortState
	Page     int  // zero with All unset means page 1
	All      bool // every filtered row instead of a single page
	PageSize int  // overrides the configured page size when positive
	Format   Format
}

// Export fetches the roster, applies query, sort and page through the same
// reducer the TUI uses, and writes the result to w.
func (e *Env) Export(ctx context.Context, eo ExportOptions, w io.Writer) error {
	cfg := e.Config
	if eo.PageSize > 0 {
		cfg.PageSize = eo.PageSize
	}
	s, err := newState(cfg)
	if err != nil {
		return err
	}

	s, eff := state.Reduce(s, state.FetchRequested{})
	s = e.Loader.Settle(ctx, s, eff)
	if s.Phase == state.Failed {
		return fmt.Errorf("%s: %w", dummyjson.Describe(s.Err), s.Err)
	}

	for _, ev := range []state.Event{
		state.SearchChanged{Query: eo.Query},
		state.SortRequested{Column: eo.Sort.Column, Direction: eo.Sort.Direction},
		state.PageChanged{Page: max(eo.Page, 1)},
	} {
		s, _ = state.Reduce(s, ev)
	}

	view := s.View()
	rows := view.Rows
	if eo.All {
		rows = s.Visible()
	}

	switch eo.Format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatRaw:
		return writeRaw(w, view.Columns, rows)
	default:
		return writePlain(w, view, rows, eo.All)
	}
}

type exportRow struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func writeJSON(w io.Writer, rows []table.Row) error {
	out := make([]exportRow, len(rows))
	for i, r := range rows {
		out[i] = exportRow{
			ID:      r.Key,
			Name:    r.Name,
			Age:     r.User.Age,
			Gender:  r.User.Gender,
			Phone:   r.User.Phone,
			Address: r.Address,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeRaw(w io.Writer, cols []table.Column, rows []table.Row) error {
	for _, r := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.Value(r)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// writePlain prints an aligned table sized to its content.
func writePlain(w io.Writer, view state.View, rows []table.Row, all bool) error {
	cols := view.Columns
	widths := make([]int, len(cols))
	cells := make([][]string, len(rows))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(headerTitle(c))
	}
	for r, row := range rows {
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			v := c.Value(row)
			cells[r][i] = v
			widths[i] = max(widths[i], runewidth.StringWidth(v))
		}
	}

	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(runewidth.FillRight(headerTitle(c), widths[i]))
	}
	b.WriteString("\n")
	for i, width := range widths {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(strings.Repeat("─", width))
	}
	b.WriteString("\n")
	for _, line := range cells {
		for i, v := range line {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(runewidth.FillRight(v, widths[i]))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if all {
		fmt.Fprintf(&b, "(%d of %d users)\n", len(rows), view.Total)
	} else {
		fmt.Fprintf(&b, "(%d of %d users, page %d/%d)\n", len(rows), view.TotalFiltered, view.Page, view.PageCount)
	}
	if view.Warning != nil {
		fmt.Fprintf(&b, "warning: %v\n", view.Warning)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func headerTitle(c table.Column) string {
	switch c.Direction {
	case table.Ascending:
		return c.Title + " ▲"
	case table.Descending:
		return c.Title + " ▼"
	default:
		return c.Title
	}
}
