package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/five82/roster/internal/table"
)

// ErrEmptyResult marks a successful fetch that returned no users. It is a
// warning, not a failure: the table renders empty.
var ErrEmptyResult = errors.New("no users returned")

// Phase is the controller's lifecycle stage.
type Phase int

const (
	Idle Phase = iota
	Loading
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Options configures a new State.
type Options struct {
	Columns     []table.ColumnSpec
	WidthBudget int
	MinWidth    int
	PageSize    int
}

// State is the composed table state. It is a value; Reduce returns a new
// State and never mutates the one it was given.
type State struct {
	Phase Phase
	// Generation identifies the most recently issued fetch.
	Generation uint64

	Rows     []table.Row // full normalized set of the last fetch
	Filtered []table.Row // Rows after the current query
	Query    string
	Sort     table.SortState
	Layout   table.Layout
	Page     table.Pagination
	Selected *table.Row

	Err       error // fetch failure while Failed
	Warning   error // ErrEmptyResult while Ready
	FetchedAt time.Time

	specs      []table.ColumnSpec
	baseLayout table.Layout
	pageSize   int
}

// New returns an Idle state. It fails only when the column defaults do not
// fit the width budget.
func New(opts Options) (State, error) {
	specs := opts.Columns
	if len(specs) == 0 {
		specs = table.DefaultColumns()
	}
	layout, err := table.NewLayout(specs, opts.WidthBudget, opts.MinWidth)
	if err != nil {
		return State{}, fmt.Errorf("init column layout: %w", err)
	}
	page := table.NewPagination(opts.PageSize)
	return State{
		Phase:      Idle,
		Layout:     layout,
		Page:       page,
		specs:      specs,
		baseLayout: layout,
		pageSize:   page.Size,
	}, nil
}

// Specs returns the column definitions in display order.
func (s State) Specs() []table.ColumnSpec {
	return s.specs
}

// NextSort is the direction a header activation on col would request.
func (s State) NextSort(col table.ColumnID) table.Direction {
	current := table.None
	if s.Sort.Column == col {
		current = s.Sort.Direction
	}
	return table.NextDirection(current)
}

// Visible returns the filtered rows in sort order, across all pages.
func (s State) Visible() []table.Row {
	if !s.Sort.Active() {
		return s.Filtered
	}
	spec, ok := table.Lookup(s.specs, s.Sort.Column)
	if !ok {
		return s.Filtered
	}
	return table.Sort(s.Filtered, spec, s.Sort.Direction)
}
