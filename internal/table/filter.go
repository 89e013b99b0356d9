package table

import (
	"strconv"
	"strings"
)

// Filter returns the rows where any searchable field contains query,
// ignoring case. A blank query returns rows itself. The result is always
// computed from the slice passed in, so callers hand it the full row set.
func Filter(rows []Row, query string) []Row {
	if strings.TrimSpace(query) == "" {
		return rows
	}
	needle := strings.ToLower(query)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if matches(row, needle) {
			out = append(out, row)
		}
	}
	return out
}

// Matches reports whether row would survive Filter(rows, query).
func Matches(row Row, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	return matches(row, strings.ToLower(query))
}

func matches(row Row, needle string) bool {
	for _, field := range SearchFields(row) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// SearchFields lists the values a query is matched against: full name, age,
// gender, phone and address.
func SearchFields(row Row) []string {
	return []string{
		row.Name,
		strconv.Itoa(row.User.Age),
		row.User.Gender,
		row.User.Phone,
		row.Address,
	}
}
