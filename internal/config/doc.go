// Package config handles loading roster's TOML configuration.
//
// # Overview
//
// roster works without any configuration file. When one exists it can point
// the viewer at another users endpoint (for example the local fixture
// server) and tune the table engine.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/roster/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing, empty or non-positive, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/roster/config.toml
//   - endpoint: https://dummyjson.com/users
//   - limit: 0 (server default)
//   - page_size: 10
//   - width_budget: 1200
//   - min_column_width: 50
//   - request_timeout_seconds: 10
//   - log_file: ~/.local/state/roster/roster.log
//
// # TOML Format
//
//	endpoint = "http://127.0.0.1:8080/users"
//	limit = 100
//	page_size = 10
//	width_budget = 1200
//	min_column_width = 50
//	request_timeout_seconds = 10
//	log_file = "~/.local/state/roster/roster.log"
//
// Tilde expansion is performed for the config path and log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - A min_column_width that cannot fit every column inside width_budget
//
// Only the table's look and data source are configurable here. Search text,
// sort, widths and page are never persisted.
package config
