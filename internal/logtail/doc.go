// Package logtail reads and filters roster's log file.
//
// # Overview
//
// The TUI owns the terminal, so roster logs to a file through log/slog's
// text handler. `roster logs` uses this package to print the end of that
// file, optionally narrowed by level or by a substring such as a request ID.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines, so the last N lines of a large
// file are returned in one pass with O(maxLines) memory:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// A non-positive maxLines returns the whole file. A missing file returns
// nil, nil; a log that was never written is not an error.
//
// # Filtering
//
// Level parses the level=... field written by slog.TextHandler, including
// offsets such as DEBUG+2. Filter drops lines below a minimum level and
// lines that do not contain a substring:
//
//	warn := logtail.Filter(lines, slog.LevelWarn, "")
//	one := logtail.Filter(lines, slog.LevelDebug, requestID)
//
// Lines without a level field, such as a stray panic trace, are never
// dropped for their level.
package logtail
