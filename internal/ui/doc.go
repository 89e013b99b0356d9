// Package ui provides the terminal interface for roster.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model wraps a state.State and owns only
// terminal concerns: window size, the focused column, the cursor row, the
// search box, dialogs and the theme. Every key or mouse action that touches
// table data is turned into a state event and run through state.Reduce, so
// the TUI and `roster export` share one code path.
//
// # Fetching
//
// New reduces the initial FetchRequested and Init issues the fetch as a
// tea.Cmd. The load function returns a FetchSucceeded or FetchFailed event
// tagged with the generation it was started for; the event comes back
// through Update and the reducer drops it when a later reset has moved the
// generation on. A spinner runs while the phase is Loading.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and Run
//   - input_handlers.go: key handling for the table, search box and dialogs
//   - mouse.go: header clicks (sort) and divider drags (resize)
//   - table.go: scaling layout units to cells and rendering rows
//   - header.go: status line, command bar and titled boxes
//   - detail.go: the user detail dialog with clipboard copy
//   - help.go: help overlay built from the key map
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Column Widths
//
// Widths are kept in layout units against the configured budget (1200 by
// default). At render time each column gets units*usable/budget cells,
// where usable is the box's inner width minus one divider per column
// boundary, so the table always fits the terminal.
package ui
