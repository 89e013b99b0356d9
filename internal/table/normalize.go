package table

import (
	"strings"

	"github.com/five82/roster/internal/dummyjson"
)

// Row is one display record derived from a source user.
type Row struct {
	Key     int64
	Name    string
	Address string
	User    dummyjson.User
}

// Normalize converts fetched users into rows, preserving source order.
// Records with missing optional fields are kept; absent parts simply
// contribute nothing to the derived fields.
func Normalize(users []dummyjson.User) []Row {
	rows := make([]Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, NewRow(u))
	}
	return rows
}

// NewRow derives a single row from u.
func NewRow(u dummyjson.User) Row {
	return Row{
		Key:     u.ID,
		Name:    fullName(u),
		Address: shortAddress(u.Address),
		User:    u,
	}
}

func fullName(u dummyjson.User) string {
	return strings.Join(strings.Fields(u.FirstName+" "+u.MaidenName+" "+u.LastName), " ")
}

// shortAddress renders "city, street"; an empty side drops the separator.
func shortAddress(a dummyjson.Address) string {
	city := strings.TrimSpace(a.City)
	street := strings.TrimSpace(a.Address)
	switch {
	case city == "":
		return street
	case street == "":
		return city
	default:
		return city + ", " + street
	}
}
