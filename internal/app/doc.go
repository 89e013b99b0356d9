// Package app is the composition root for roster.
//
// # Overview
//
// Setup loads configuration, opens the log file and builds the users
// client. The resulting Env is shared by every command: Run starts the TUI,
// Export drives the same reducer without a terminal.
//
//	┌──────────────┐
//	│   Setup()    │
//	└──────┬───────┘
//	       ├─────> config.Load()        ~/.config/roster/config.toml
//	       ├─────> OpenLog()            slog text handler on the log file
//	       ├─────> dummyjson.NewClient() users endpoint
//	       └─────> NewLoader()          fetch -> state.Event
//
//	Run():    state.New -> ui.Run (Loader.Load as the fetch command)
//	Export(): state.New -> Reduce(FetchRequested) -> Loader.Settle
//	          -> SearchChanged / SortRequested / PageChanged -> write
//
// # Fetch Lifecycle
//
// Loader.Load performs one fetch for a generation and reports the outcome
// as a FetchSucceeded or FetchFailed event. It logs start, success and
// failure with the request ID carried by dummyjson.FetchError. Settle runs
// fetch effects synchronously until the state stops asking for one, which
// is what the non-interactive commands need.
//
// # Error Handling
//
// Fatal errors (returned from Setup or Run):
//   - configuration file unreadable or invalid
//   - log directory or file cannot be created
//   - endpoint cannot be parsed
//
// Fetch failures are not fatal in the TUI: the state moves to Failed and
// the user can reset. Export returns them with the short description from
// dummyjson.Describe as the prefix.
package app
