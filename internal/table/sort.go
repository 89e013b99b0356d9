package table

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a column's sort order.
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// ParseDirection accepts asc/ascending, desc/descending and none.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	case "none":
		return None, nil
	default:
		return None, fmt.Errorf("unknown sort direction %q", s)
	}
}

// NextDirection cycles a header activation: none, ascending, descending, none.
func NextDirection(d Direction) Direction {
	switch d {
	case None:
		return Ascending
	case Ascending:
		return Descending
	default:
		return None
	}
}

// SortState names at most one active sort column.
type SortState struct {
	Column    ColumnID
	Direction Direction
}

// Active reports whether a sort should be applied.
func (s SortState) Active() bool {
	return s.Column != "" && s.Direction != None
}

// sortLocale is the single locale used for string comparison.
var sortLocale = language.AmericanEnglish

// Sort returns a new slice ordered by spec's comparator. Direction None, or a
// column without a comparator, returns a copy in the original order. Equal
// keys keep their original relative order in both directions.
func Sort(rows []Row, spec ColumnSpec, dir Direction) []Row {
	out := slices.Clone(rows)
	if dir == None || !spec.Sortable {
		return out
	}
	compare := comparator(spec)
	if compare == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b Row) int {
		if dir == Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}

func comparator(spec ColumnSpec) func(a, b Row) int {
	if spec.Number != nil {
		return func(a, b Row) int {
			return cmp.Compare(spec.Number(a), spec.Number(b))
		}
	}
	if spec.Value == nil {
		return nil
	}
	// Collators keep scratch buffers and are not safe to share.
	coll := collate.New(sortLocale)
	return func(a, b Row) int {
		return coll.CompareString(spec.Value(a), spec.Value(b))
	}
}
