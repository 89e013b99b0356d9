package state

import (
	"time"

	"github.com/five82/roster/internal/dummyjson"
	"github.com/five82/roster/internal/table"
)

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// FetchRequested asks for the initial load. It only has an effect while Idle.
type FetchRequested struct{}

// ResetRequested discards query, sort, layout, page, selection and rows and
// issues a new fetch. Valid in every phase.
type ResetRequested struct{}

// FetchSucceeded delivers the users of fetch Generation.
type FetchSucceeded struct {
	Generation uint64
	Users      []dummyjson.User
	At         time.Time
}

// FetchFailed delivers the error of fetch Generation.
type FetchFailed struct {
	Generation uint64
	Err        error
}

// SearchChanged replaces the query.
type SearchChanged struct {
	Query string
}

// SortRequested activates Column with Direction. None clears the sort.
type SortRequested struct {
	Column    table.ColumnID
	Direction table.Direction
}

// ColumnResized proposes a new width for Column.
type ColumnResized struct {
	Column table.ColumnID
	Width  int
}

// PageChanged moves to Page.
type PageChanged struct {
	Page int
}

// RowActivated opens the detail view for the row with Key.
type RowActivated struct {
	Key int64
}

// DialogDismissed closes the detail view.
type DialogDismissed struct{}

func (FetchRequested) isEvent()  {}
func (ResetRequested) isEvent()  {}
func (FetchSucceeded) isEvent()  {}
func (FetchFailed) isEvent()     {}
func (SearchChanged) isEvent()   {}
func (SortRequested) isEvent()   {}
func (ColumnResized) isEvent()   {}
func (PageChanged) isEvent()     {}
func (RowActivated) isEvent()    {}
func (DialogDismissed) isEvent() {}

// Effect tells the caller what to do after a transition.
type Effect struct {
	// Fetch is set when a new request must be issued for Generation.
	Fetch      bool
	Generation uint64
	// Rejected carries the reason a resize was refused.
	Rejected error
}
