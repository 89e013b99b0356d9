package table

import (
	"strconv"
	"strings"
)

// Field is one labelled value in the detail dialog.
type Field struct {
	Label string
	Value string
}

// Detail lists the fields shown for a selected row. Empty values are
// omitted so sparse records still render cleanly.
func Detail(row Row) []Field {
	u := row.User
	fields := []Field{
		{"ID", strconv.FormatInt(row.Key, 10)},
		{"Name", row.Name},
		{"Username", u.Username},
		{"Email", u.Email},
		{"Phone", u.Phone},
		{"Age", strconv.Itoa(u.Age)},
		{"Gender", u.Gender},
		{"Birth date", u.BirthDate},
		{"Height", formatMeasure(u.Height, "cm")},
		{"Weight", formatMeasure(u.Weight, "kg")},
		{"Blood group", u.BloodGroup},
		{"Eye color", u.EyeColor},
		{"Hair", strings.TrimSpace(u.Hair.Color + " " + u.Hair.Type)},
		{"Address", u.Address.Postal()},
		{"University", u.University},
		{"Company", strings.Join(nonEmpty(u.Company.Title, u.Company.Department, u.Company.Name), ", ")},
		{"Role", u.Role},
	}
	out := fields[:0]
	for _, f := range fields {
		if strings.TrimSpace(f.Value) != "" {
			out = append(out, f)
		}
	}
	return out
}

// DetailText renders Detail as "Label: value" lines.
func DetailText(row Row) string {
	var b strings.Builder
	for _, f := range Detail(row) {
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

func formatMeasure(v float64, unit string) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + unit
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
