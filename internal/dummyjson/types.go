package dummyjson

import "strings"

// UsersResponse mirrors the payload returned by GET /users.
type UsersResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

// User describes a roster entry in transport-friendly form. Only id, names,
// age, gender, phone and address are guaranteed; everything else may be
// missing from a given record.
type User struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MaidenName string  `json:"maidenName"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Username   string  `json:"username"`
	BirthDate  string  `json:"birthDate"`
	Image      string  `json:"image"`
	BloodGroup string  `json:"bloodGroup"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	EyeColor   string  `json:"eyeColor"`
	Hair       Hair    `json:"hair"`
	IP         string  `json:"ip"`
	Address    Address `json:"address"`
	University string  `json:"university"`
	Company    Company `json:"company"`
	Role       string  `json:"role"`
}

// Hair is the nested hair descriptor.
type Hair struct {
	Color string `json:"color"`
	Type  string `json:"type"`
}

// Address is a postal address. Address holds the street line.
type Address struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	StateCode   string      `json:"stateCode"`
	PostalCode  string      `json:"postalCode"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

// Coordinates is a lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Company describes the user's employer.
type Company struct {
	Department string  `json:"department"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Address    Address `json:"address"`
}

// Postal returns a one-line postal rendering of the address, skipping blank
// parts.
func (a Address) Postal() string {
	region := strings.TrimSpace(strings.Join(nonBlank(a.State, a.PostalCode), " "))
	return strings.Join(nonBlank(a.Address, a.City, region, a.Country), ", ")
}

func nonBlank(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
