package table

import (
	"strconv"
	"strings"
)

// ColumnID identifies a column across specs, layout and sort state.
type ColumnID string

const (
	ColumnUserID  ColumnID = "id"
	ColumnName    ColumnID = "name"
	ColumnAge     ColumnID = "age"
	ColumnGender  ColumnID = "gender"
	ColumnPhone   ColumnID = "phone"
	ColumnAddress ColumnID = "address"
)

// Alignment controls how a cell is padded within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ColumnSpec is the static definition of a column.
type ColumnSpec struct {
	ID           ColumnID
	Title        string
	Align        Alignment
	DefaultWidth int
	// Value renders the cell text.
	Value func(Row) string
	// Number is set for numeric columns and drives their comparator.
	Number func(Row) int64
	// Sortable is false for columns without a comparator (phone).
	Sortable bool
}

// Column is the render-time descriptor: spec plus current width and sort.
type Column struct {
	ColumnSpec
	Width     int
	Direction Direction
}

// DefaultColumns returns the roster's column set in display order.
func DefaultColumns() []ColumnSpec {
	return []ColumnSpec{
		{
			ID:           ColumnUserID,
			Title:        "ID",
			Align:        AlignLeft,
			DefaultWidth: 80,
			Value:        func(r Row) string { return strconv.FormatInt(r.Key, 10) },
			Number:       func(r Row) int64 { return r.Key },
			Sortable:     true,
		},
		{
			ID:           ColumnName,
			Title:        "Name",
			Align:        AlignCenter,
			DefaultWidth: 200,
			Value:        func(r Row) string { return r.Name },
			Sortable:     true,
		},
		{
			ID:           ColumnAge,
			Title:        "Age",
			Align:        AlignCenter,
			DefaultWidth: 80,
			Value:        func(r Row) string { return strconv.Itoa(r.User.Age) },
			Number:       func(r Row) int64 { return int64(r.User.Age) },
			Sortable:     true,
		},
		{
			ID:           ColumnGender,
			Title:        "Gender",
			Align:        AlignCenter,
			DefaultWidth: 120,
			Value:        func(r Row) string { return r.User.Gender },
			Sortable:     true,
		},
		{
			ID:           ColumnPhone,
			Title:        "Number",
			Align:        AlignCenter,
			DefaultWidth: 200,
			Value:        func(r Row) string { return r.User.Phone },
		},
		{
			ID:           ColumnAddress,
			Title:        "Address",
			Align:        AlignCenter,
			DefaultWidth: 400,
			Value:        func(r Row) string { return r.Address },
			Sortable:     true,
		},
	}
}

// Lookup finds the spec for id.
func Lookup(specs []ColumnSpec, id ColumnID) (ColumnSpec, bool) {
	for _, spec := range specs {
		if spec.ID == id {
			return spec, true
		}
	}
	return ColumnSpec{}, false
}

// ParseColumnID accepts a column id or its title, case-insensitively.
func ParseColumnID(specs []ColumnSpec, name string) (ColumnID, bool) {
	for _, spec := range specs {
		if strings.EqualFold(string(spec.ID), name) || strings.EqualFold(spec.Title, name) {
			return spec.ID, true
		}
	}
	return "", false
}

// DeriveColumns merges specs with the current sort state and layout. Widths
// come only from the layout, so re-deriving after a sort change keeps every
// resize intact. Columns missing from the layout use their default width.
func DeriveColumns(specs []ColumnSpec, sort SortState, layout Layout) []Column {
	cols := make([]Column, 0, len(specs))
	for _, spec := range specs {
		width, ok := layout.Width(spec.ID)
		if !ok {
			width = spec.DefaultWidth
		}
		dir := None
		if spec.Sortable && sort.Column == spec.ID {
			dir = sort.Direction
		}
		cols = append(cols, Column{ColumnSpec: spec, Width: width, Direction: dir})
	}
	return cols
}
