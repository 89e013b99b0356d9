package table

import (
	"errors"
	"fmt"
	"maps"
)

const (
	// DefaultWidthBudget is the maximum total width across all columns.
	DefaultWidthBudget = 1200
	// DefaultMinWidth is the narrowest a column may be.
	DefaultMinWidth = 50
)

var (
	// ErrWidthBudget is returned when a resize would push the total width
	// over the budget.
	ErrWidthBudget = errors.New("column widths exceed budget")
	// ErrUnknownColumn is returned when resizing a column the layout does not hold.
	ErrUnknownColumn = errors.New("unknown column")
)

// Layout holds per-column widths. It is a value: Resize returns a new Layout
// and never modifies the receiver.
type Layout struct {
	order    []ColumnID
	widths   map[ColumnID]int
	budget   int
	minWidth int
}

// NewLayout seeds a layout from each spec's default width. Non-positive
// budget or minimum select the defaults. Widths below the minimum are raised
// to it; if the defaults then exceed the budget an ErrWidthBudget is returned.
func NewLayout(specs []ColumnSpec, budget, minWidth int) (Layout, error) {
	if budget <= 0 {
		budget = DefaultWidthBudget
	}
	if minWidth <= 0 {
		minWidth = DefaultMinWidth
	}
	l := Layout{
		order:    make([]ColumnID, 0, len(specs)),
		widths:   make(map[ColumnID]int, len(specs)),
		budget:   budget,
		minWidth: minWidth,
	}
	for _, spec := range specs {
		l.order = append(l.order, spec.ID)
		l.widths[spec.ID] = max(spec.DefaultWidth, minWidth)
	}
	if total := l.Total(); total > budget {
		return Layout{}, fmt.Errorf("%w: default widths total %d, budget %d", ErrWidthBudget, total, budget)
	}
	return l, nil
}

// Budget returns the maximum total width.
func (l Layout) Budget() int { return l.budget }

// MinWidth returns the minimum column width.
func (l Layout) MinWidth() int { return l.minWidth }

// Width returns the stored width of id.
func (l Layout) Width(id ColumnID) (int, bool) {
	w, ok := l.widths[id]
	return w, ok
}

// Total sums every column width.
func (l Layout) Total() int {
	total := 0
	for _, w := range l.widths {
		total += w
	}
	return total
}

// Remaining is the width still available under the budget.
func (l Layout) Remaining() int {
	return l.budget - l.Total()
}

// Columns returns the column ids in layout order.
func (l Layout) Columns() []ColumnID {
	return append([]ColumnID(nil), l.order...)
}

// Resize sets id to proposed, raised to the minimum width. When the new total
// would exceed the budget the receiver is returned unchanged together with
// ErrWidthBudget; widths are never partially applied or redistributed.
func (l Layout) Resize(id ColumnID, proposed int) (Layout, error) {
	current, ok := l.widths[id]
	if !ok {
		return l, fmt.Errorf("%w: %q", ErrUnknownColumn, id)
	}
	width := max(proposed, l.minWidth)
	if width == current {
		return l, nil
	}
	// Compare against the room left so huge widths cannot wrap the sum.
	available := l.budget - (l.Total() - current)
	if width > available {
		return l, fmt.Errorf("%w: resizing %s to %d leaves room for %d, budget %d", ErrWidthBudget, id, width, available, l.budget)
	}
	next := l
	next.widths = maps.Clone(l.widths)
	next.widths[id] = width
	return next, nil
}
