// Package table is the client-side tabular engine behind the roster view.
//
// # Overview
//
// Everything in this package is a pure function or an immutable value. The
// state package owns the composed view state and calls into these engines
// with explicit inputs; nothing here closes over shared data or touches the
// network.
//
// Data flows in one direction:
//
//	Normalize(users) -> Filter(rows, query) -> Sort(rows, spec, dir) -> Pagination.Slice(rows)
//
// Column widths live in a Layout, which is independent of sorting. The
// renderer gets its column descriptors from DeriveColumns, which merges the
// static ColumnSpecs, the active SortState and the Layout at render time, so a
// sort change can never undo a resize.
//
// # Files
//
//   - normalize.go: Row and Normalize (derived name/address, key = id)
//   - columns.go: ColumnSpec, Column and DeriveColumns
//   - sort.go: Direction, SortState, Sort and NextDirection
//   - filter.go: case-insensitive substring search over the searchable fields
//   - layout.go: Layout with the width budget and minimum column width
//   - paginate.go: Pagination (page/size over the filtered set)
//   - detail.go: the field list shown in the detail dialog
//
// # Width Budget
//
// A Layout never holds a column narrower than its minimum width, and the sum
// of its widths never exceeds the budget. Resize clamps the proposed width up
// to the minimum and rejects the change with ErrWidthBudget when the new total
// would exceed the budget; the returned Layout is then the receiver, unchanged.
package table
