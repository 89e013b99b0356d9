// Package state is the table view controller: a reducer over the composed
// roster state.
//
// # Overview
//
// State holds the fetched rows, the filtered view, the query, sort, column
// layout, page and selection. It is only ever changed through Reduce:
//
//	next, effect := state.Reduce(current, ev)
//
// Reduce is pure. It returns a new State plus an Effect describing work the
// caller must do, which is either issuing a fetch or reporting a rejected
// resize. The UI keeps the State in its bubbletea model and feeds it every
// key, mouse and fetch message, so all transitions happen on the Update loop
// and no locking is required.
//
// # Phases
//
//	Idle --FetchRequested--> Loading
//	Loading --FetchSucceeded--> Ready
//	Loading --FetchFailed--> Failed
//	any --ResetRequested--> Loading
//
// While Ready, SearchChanged, SortRequested, ColumnResized, PageChanged and
// RowActivated update the view. In every other phase they are ignored.
// DialogDismissed always clears the selection.
//
// # Fetch Generations
//
// Entering Loading bumps Generation and returns Effect{Fetch: true}. The
// caller runs the fetch and sends back FetchSucceeded or FetchFailed tagged
// with that generation. A reset while Loading bumps the generation again, so
// the earlier response is dropped when it arrives:
//
//	s, eff1 := state.Reduce(s, state.FetchRequested{}) // generation 1
//	s, eff2 := state.Reduce(s, state.ResetRequested{}) // generation 2
//	s, _ = state.Reduce(s, state.FetchSucceeded{Generation: 1}) // ignored
//
// # Resetting
//
// A successful fetch and a reset both return query, sort, layout and page to
// their defaults and clear the selection. A failed fetch clears the rows
// rather than keeping stale data around.
//
// # Rendering
//
// View projects the state into what a frame needs: derived column
// descriptors, the sorted rows of the current page, page counts and any
// error or warning. Sorting is applied here, at projection time, over the
// filtered set.
package state
