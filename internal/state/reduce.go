package state

import (
	"errors"

	"github.com/five82/roster/internal/table"
)

// Reduce applies ev to s. Events that depend on data are ignored unless s is
// Ready, and fetch results for anything but the latest generation are
// dropped, so the rows that reach Ready always belong to the newest request.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case FetchRequested:
		if s.Phase != Idle {
			return s, Effect{}
		}
		return startFetch(s)

	case ResetRequested:
		return startFetch(s)

	case FetchSucceeded:
		if s.Phase != Loading || ev.Generation != s.Generation {
			return s, Effect{}
		}
		s = clearView(s)
		s.Phase = Ready
		s.Rows = table.Normalize(ev.Users)
		s.Filtered = s.Rows
		s.FetchedAt = ev.At
		if len(s.Rows) == 0 {
			s.Warning = ErrEmptyResult
		}
		return s, Effect{}

	case FetchFailed:
		if s.Phase != Loading || ev.Generation != s.Generation {
			return s, Effect{}
		}
		s = clearView(s)
		s.Phase = Failed
		s.Err = ev.Err
		if s.Err == nil {
			s.Err = errors.New("fetch failed")
		}
		return s, Effect{}

	case DialogDismissed:
		s.Selected = nil
		return s, Effect{}
	}

	if s.Phase != Ready {
		return s, Effect{}
	}

	switch ev := ev.(type) {
	case SearchChanged:
		s.Query = ev.Query
		s.Filtered = table.Filter(s.Rows, ev.Query)
		s.Page = s.Page.Reset()

	case SortRequested:
		spec, ok := table.Lookup(s.specs, ev.Column)
		if !ok || !spec.Sortable {
			return s, Effect{}
		}
		if ev.Direction == table.None {
			s.Sort = table.SortState{}
		} else {
			s.Sort = table.SortState{Column: ev.Column, Direction: ev.Direction}
		}

	case ColumnResized:
		next, err := s.Layout.Resize(ev.Column, ev.Width)
		if err != nil {
			return s, Effect{Rejected: err}
		}
		s.Layout = next

	case PageChanged:
		s.Page = s.Page.SetPage(ev.Page)

	case RowActivated:
		for i := range s.Rows {
			if s.Rows[i].Key == ev.Key {
				row := s.Rows[i]
				s.Selected = &row
				break
			}
		}
	}
	return s, Effect{}
}

func startFetch(s State) (State, Effect) {
	s = clearView(s)
	s.Generation++
	s.Phase = Loading
	return s, Effect{Fetch: true, Generation: s.Generation}
}

// clearView drops rows and every piece of interaction state.
func clearView(s State) State {
	s.Rows = nil
	s.Filtered = nil
	s.Query = ""
	s.Sort = table.SortState{}
	s.Layout = s.baseLayout
	s.Page = table.NewPagination(s.pageSize)
	s.Selected = nil
	s.Err = nil
	s.Warning = nil
	return s
}
