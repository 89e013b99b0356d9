package state

import (
	"time"

	"github.com/five82/roster/internal/table"
)

// View is everything the renderer needs for one frame.
type View struct {
	Phase         Phase
	Loading       bool
	Columns       []table.Column
	Rows          []table.Row // rows of the current page, sorted
	Page          int
	PageCount     int
	PageSize      int
	TotalFiltered int
	Total         int
	Query         string
	Sort          table.SortState
	Selected      *table.Row
	Err           error
	Warning       error
	FetchedAt     time.Time
}

// View projects s for rendering. Columns are derived from the specs, the
// sort state and the layout on every call rather than stored.
func (s State) View() View {
	return View{
		Phase:         s.Phase,
		Loading:       s.Phase == Loading,
		Columns:       table.DeriveColumns(s.specs, s.Sort, s.Layout),
		Rows:          s.Page.Slice(s.Visible()),
		Page:          s.Page.Page,
		PageCount:     s.Page.PageCount(len(s.Filtered)),
		PageSize:      s.Page.Size,
		TotalFiltered: len(s.Filtered),
		Total:         len(s.Rows),
		Query:         s.Query,
		Sort:          s.Sort,
		Selected:      s.Selected,
		Err:           s.Err,
		Warning:       s.Warning,
		FetchedAt:     s.FetchedAt,
	}
}
