package table

import (
	"errors"
	"math"
	"math/rand/v2"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/five82/roster/internal/dummyjson"
)

func sampleUsers() []dummyjson.User {
	return []dummyjson.User{
		{ID: 3, FirstName: "Bob", LastName: "Lee", Age: 40, Gender: "male", Phone: "+1 555-0103",
			Address: dummyjson.Address{City: "Austin", Address: "1 Main St"}},
		{ID: 1, FirstName: "Ann", LastName: "Zed", Age: 28, Gender: "female", Phone: "+44 20-0101",
			Address: dummyjson.Address{City: "Leeds", Address: "9 High Rd"}},
	}
}

func keys(rows []Row) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.Key
	}
	return out
}

func mustSpec(t *testing.T, id ColumnID) ColumnSpec {
	t.Helper()
	spec, ok := Lookup(DefaultColumns(), id)
	if !ok {
		t.Fatalf("no spec for %q", id)
	}
	return spec
}

func TestNormalize_DerivesFieldsAndKeepsOrder(t *testing.T) {
	users := append(sampleUsers(), dummyjson.User{ID: 7, FirstName: "Cy", MaidenName: "  ", LastName: "Ode"})
	users[0].MaidenName = "Kay"

	rows := Normalize(users)
	if got := keys(rows); !reflect.DeepEqual(got, []int64{3, 1, 7}) {
		t.Fatalf("keys = %v, want [3 1 7]", got)
	}
	if rows[0].Name != "Bob Kay Lee" {
		t.Fatalf("name = %q, want %q", rows[0].Name, "Bob Kay Lee")
	}
	if rows[1].Name != "Ann Zed" {
		t.Fatalf("name without maiden = %q, want %q", rows[1].Name, "Ann Zed")
	}
	if rows[2].Name != "Cy Ode" {
		t.Fatalf("blank maiden name = %q, want %q", rows[2].Name, "Cy Ode")
	}
	if rows[0].Address != "Austin, 1 Main St" {
		t.Fatalf("address = %q, want %q", rows[0].Address, "Austin, 1 Main St")
	}
	if rows[2].Address != "" {
		t.Fatalf("empty address = %q, want empty", rows[2].Address)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if rows := Normalize(nil); len(rows) != 0 {
		t.Fatalf("Normalize(nil) = %v, want empty", rows)
	}
}

func TestShortAddress_CollapsesMissingSide(t *testing.T) {
	cases := []struct {
		addr dummyjson.Address
		want string
	}{
		{dummyjson.Address{City: "Oslo"}, "Oslo"},
		{dummyjson.Address{Address: "2 Pier"}, "2 Pier"},
		{dummyjson.Address{City: " Oslo ", Address: " 2 Pier "}, "Oslo, 2 Pier"},
	}
	for _, tc := range cases {
		if got := shortAddress(tc.addr); got != tc.want {
			t.Errorf("shortAddress(%+v) = %q, want %q", tc.addr, got, tc.want)
		}
	}
}

func TestSort_ByIDAscending(t *testing.T) {
	rows := Normalize(sampleUsers())
	sorted := Sort(rows, mustSpec(t, ColumnUserID), Ascending)
	if got := keys(sorted); !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Fatalf("sorted keys = %v, want [1 3]", got)
	}
	if got := keys(rows); !reflect.DeepEqual(got, []int64{3, 1}) {
		t.Fatalf("input was reordered: %v", got)
	}
}

func TestSort_NoneAndUnsortableKeepOrder(t *testing.T) {
	rows := Normalize(sampleUsers())
	if got := keys(Sort(rows, mustSpec(t, ColumnUserID), None)); !reflect.DeepEqual(got, []int64{3, 1}) {
		t.Fatalf("direction none = %v, want [3 1]", got)
	}
	if got := keys(Sort(rows, mustSpec(t, ColumnPhone), Ascending)); !reflect.DeepEqual(got, []int64{3, 1}) {
		t.Fatalf("phone sort = %v, want original order", got)
	}
}

func TestSort_StringsUseLocaleCollation(t *testing.T) {
	rows := Normalize([]dummyjson.User{
		{ID: 1, FirstName: "Banana"},
		{ID: 2, FirstName: "apple"},
		{ID: 3, FirstName: "cherry"},
	})
	sorted := Sort(rows, mustSpec(t, ColumnName), Ascending)
	if got := keys(sorted); !reflect.DeepEqual(got, []int64{2, 1, 3}) {
		t.Fatalf("collated order = %v, want [2 1 3]", got)
	}
}

func TestSort_TiesKeepOriginalOrderBothDirections(t *testing.T) {
	rows := Normalize([]dummyjson.User{
		{ID: 1, Age: 30}, {ID: 2, Age: 20}, {ID: 3, Age: 30}, {ID: 4, Age: 20},
	})
	age := mustSpec(t, ColumnAge)
	if got := keys(Sort(rows, age, Ascending)); !reflect.DeepEqual(got, []int64{2, 4, 1, 3}) {
		t.Fatalf("ascending = %v, want [2 4 1 3]", got)
	}
	if got := keys(Sort(rows, age, Descending)); !reflect.DeepEqual(got, []int64{1, 3, 2, 4}) {
		t.Fatalf("descending = %v, want [1 3 2 4]", got)
	}
}

func randomRows(r *rand.Rand, n int) []Row {
	first := []string{"Ann", "Bob", "Cy", "Dee", "Eli", "Fay", "Gus"}
	last := []string{"Zed", "Lee", "Ode", "Park", "Quinn"}
	genders := []string{"male", "female"}
	users := make([]dummyjson.User, n)
	for i := range users {
		users[i] = dummyjson.User{
			ID:        int64(i + 1),
			FirstName: first[r.IntN(len(first))],
			LastName:  last[r.IntN(len(last))],
			Age:       18 + r.IntN(60),
			Gender:    genders[r.IntN(len(genders))],
			Phone:     "+1 555-" + strconv.Itoa(1000+r.IntN(9000)),
			Address:   dummyjson.Address{City: last[r.IntN(len(last))] + "ville", Address: strconv.Itoa(r.IntN(99)) + " Elm St"},
		}
	}
	r.Shuffle(len(users), func(i, j int) { users[i], users[j] = users[j], users[i] })
	return Normalize(users)
}

func TestSort_IdempotentAndReversible(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	rows := randomRows(r, 40)
	for _, spec := range DefaultColumns() {
		if !spec.Sortable {
			continue
		}
		asc := Sort(rows, spec, Ascending)
		if again := Sort(asc, spec, Ascending); !reflect.DeepEqual(keys(again), keys(asc)) {
			t.Fatalf("%s: re-sorting ascending changed the order", spec.ID)
		}
	}

	id := mustSpec(t, ColumnUserID)
	asc := keys(Sort(rows, id, Ascending))
	desc := keys(Sort(rows, id, Descending))
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("descending is not the reverse of ascending: %v vs %v", asc, desc)
		}
	}
}

func TestNextDirection_Cycles(t *testing.T) {
	d := None
	var seen []Direction
	for range 4 {
		d = NextDirection(d)
		seen = append(seen, d)
	}
	want := []Direction{Ascending, Descending, None, Ascending}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("cycle = %v, want %v", seen, want)
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"": Ascending, "ASC": Ascending, "desc": Descending, "descending": Descending, "none": None} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Errorf("ParseDirection(sideways) returned nil error")
	}
}

func TestFilter_ScenarioAndIdentity(t *testing.T) {
	rows := Normalize(sampleUsers())

	if got := keys(Filter(rows, "zed")); !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("Filter(zed) = %v, want [1]", got)
	}
	for _, q := range []string{"", "   ", "\t"} {
		got := Filter(rows, q)
		if len(got) != len(rows) || &got[0] != &rows[0] {
			t.Fatalf("Filter(%q) did not return the input set", q)
		}
	}
}

func TestFilter_MatchesEachSearchableField(t *testing.T) {
	rows := Normalize(sampleUsers())
	cases := map[string][]int64{
		"ANN":     {1},
		"40":      {3},
		"female":  {1},
		"male":    {3, 1},
		"555-01":  {3},
		"leeds":   {1},
		"main st": {3},
		"nobody":  {},
	}
	for q, want := range cases {
		if got := keys(Filter(rows, q)); !reflect.DeepEqual(got, want) {
			t.Errorf("Filter(%q) = %v, want %v", q, got, want)
		}
	}
}

func TestFilter_ExactInclusionProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	rows := randomRows(r, 60)
	queries := []string{"an", "ZED", "ville", "55", "fem", "elm", "x", "2", "o"}
	for _, q := range queries {
		filtered := Filter(rows, q)
		kept := make(map[int64]bool, len(filtered))
		for _, row := range filtered {
			kept[row.Key] = true
		}
		for _, row := range rows {
			hit := false
			for _, f := range SearchFields(row) {
				if strings.Contains(strings.ToLower(f), strings.ToLower(q)) {
					hit = true
				}
			}
			if hit != kept[row.Key] {
				t.Fatalf("query %q: row %d hit=%v kept=%v", q, row.Key, hit, kept[row.Key])
			}
		}
		// Shortening the query never loses rows.
		if len(q) > 1 && len(Filter(rows, q[:1])) < len(filtered) {
			t.Fatalf("query %q: shorter query returned fewer rows", q)
		}
	}
}

func TestMatches(t *testing.T) {
	row := Normalize(sampleUsers())[1]
	if !Matches(row, "Zed") || !Matches(row, "") || Matches(row, "bob") {
		t.Fatalf("Matches gave unexpected results for %+v", row)
	}
}

func newTestLayout(t *testing.T) Layout {
	t.Helper()
	l, err := NewLayout(DefaultColumns(), DefaultWidthBudget, DefaultMinWidth)
	if err != nil {
		t.Fatalf("NewLayout returned error: %v", err)
	}
	return l
}

func TestLayout_DefaultsWithinBudget(t *testing.T) {
	l := newTestLayout(t)
	if l.Total() != 1080 {
		t.Fatalf("Total = %d, want 1080", l.Total())
	}
	if l.Remaining() != 120 {
		t.Fatalf("Remaining = %d, want 120", l.Remaining())
	}
	if _, err := NewLayout(DefaultColumns(), 600, 50); !errors.Is(err, ErrWidthBudget) {
		t.Fatalf("NewLayout over budget error = %v, want ErrWidthBudget", err)
	}
}

func TestLayout_ResizeClampsToMinimum(t *testing.T) {
	l := newTestLayout(t)
	next, err := l.Resize(ColumnName, 40)
	if err != nil {
		t.Fatalf("Resize returned error: %v", err)
	}
	if w, _ := next.Width(ColumnName); w != 50 {
		t.Fatalf("name width = %d, want 50", w)
	}
	if w, _ := l.Width(ColumnName); w != 200 {
		t.Fatalf("original layout changed: name width = %d, want 200", w)
	}
	if w, _ := next.Width(ColumnAddress); w != 400 {
		t.Fatalf("address width = %d, want 400", w)
	}
}

func TestLayout_ResizeOverBudgetRejected(t *testing.T) {
	l := newTestLayout(t)
	// 1080 - 200 + 370 = 1250
	next, err := l.Resize(ColumnName, 370)
	if !errors.Is(err, ErrWidthBudget) {
		t.Fatalf("Resize error = %v, want ErrWidthBudget", err)
	}
	if w, _ := next.Width(ColumnName); w != 200 {
		t.Fatalf("name width = %d, want 200 retained", w)
	}
	if next.Total() != l.Total() {
		t.Fatalf("Total changed after rejection: %d vs %d", next.Total(), l.Total())
	}

	for _, huge := range []int{math.MaxInt, math.MaxInt - 100} {
		next, err := l.Resize(ColumnName, huge)
		if !errors.Is(err, ErrWidthBudget) {
			t.Fatalf("Resize(%d) error = %v, want ErrWidthBudget", huge, err)
		}
		if next.Total() != l.Total() {
			t.Fatalf("Resize(%d) changed total to %d", huge, next.Total())
		}
	}

	exact, err := l.Resize(ColumnName, 320)
	if err != nil {
		t.Fatalf("Resize to exactly the budget returned error: %v", err)
	}
	if exact.Total() != 1200 {
		t.Fatalf("Total = %d, want 1200", exact.Total())
	}
}

func TestLayout_ResizeUnknownAndNoop(t *testing.T) {
	l := newTestLayout(t)
	if _, err := l.Resize("salary", 100); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("Resize unknown error = %v, want ErrUnknownColumn", err)
	}
	same, err := l.Resize(ColumnAge, 80)
	if err != nil {
		t.Fatalf("no-op Resize returned error: %v", err)
	}
	if !reflect.DeepEqual(same, l) {
		t.Fatalf("no-op Resize changed the layout")
	}
}

func TestLayout_RandomResizesHoldInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	l := newTestLayout(t)
	ids := l.Columns()
	for i := 0; i < 500; i++ {
		id := ids[r.IntN(len(ids))]
		before := l
		next, err := l.Resize(id, r.IntN(600)-50)
		if err != nil {
			if !reflect.DeepEqual(next, before) {
				t.Fatalf("step %d: rejected resize changed widths", i)
			}
			continue
		}
		for _, other := range ids {
			if other == id {
				continue
			}
			a, _ := before.Width(other)
			b, _ := next.Width(other)
			if a != b {
				t.Fatalf("step %d: resizing %s changed %s from %d to %d", i, id, other, a, b)
			}
		}
		l = next
		if l.Total() > DefaultWidthBudget {
			t.Fatalf("step %d: total %d exceeds budget", i, l.Total())
		}
		for _, c := range ids {
			if w, _ := l.Width(c); w < DefaultMinWidth {
				t.Fatalf("step %d: %s width %d below minimum", i, c, w)
			}
		}
	}
}

func TestDeriveColumns_KeepsWidthsAcrossSortChanges(t *testing.T) {
	specs := DefaultColumns()
	l, err := newTestLayout(t).Resize(ColumnAddress, 300)
	if err != nil {
		t.Fatalf("Resize returned error: %v", err)
	}

	cols := DeriveColumns(specs, SortState{Column: ColumnAge, Direction: Descending}, l)
	if len(cols) != len(specs) {
		t.Fatalf("len(cols) = %d, want %d", len(cols), len(specs))
	}
	for _, c := range cols {
		want := None
		if c.ID == ColumnAge {
			want = Descending
		}
		if c.Direction != want {
			t.Fatalf("%s direction = %v, want %v", c.ID, c.Direction, want)
		}
		if c.ID == ColumnAddress && c.Width != 300 {
			t.Fatalf("address width = %d, want 300 after sort change", c.Width)
		}
	}

	// Zero layout falls back to column defaults.
	for _, c := range DeriveColumns(specs, SortState{}, Layout{}) {
		if c.Width != c.DefaultWidth {
			t.Fatalf("%s width = %d, want default %d", c.ID, c.Width, c.DefaultWidth)
		}
	}
}

func TestPagination(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	rows := randomRows(r, 23)
	p := NewPagination(0)
	if p.Page != 1 || p.Size != DefaultPageSize {
		t.Fatalf("NewPagination(0) = %+v, want page 1 size %d", p, DefaultPageSize)
	}
	if got := p.PageCount(len(rows)); got != 3 {
		t.Fatalf("PageCount = %d, want 3", got)
	}
	if got := len(p.SetPage(3).Slice(rows)); got != 3 {
		t.Fatalf("last page has %d rows, want 3", got)
	}
	if got := p.SetPage(9).Slice(rows); len(got) != 0 {
		t.Fatalf("out-of-range page has %d rows, want 0", len(got))
	}
	if got := p.SetPage(-2).Page; got != 1 {
		t.Fatalf("SetPage(-2).Page = %d, want 1", got)
	}
	if got := p.SetPage(4).Reset().Page; got != 1 {
		t.Fatalf("Reset().Page = %d, want 1", got)
	}
	if got := p.PageCount(0); got != 1 {
		t.Fatalf("PageCount(0) = %d, want 1", got)
	}
}

func TestDetail_SkipsEmptyFields(t *testing.T) {
	row := Normalize(sampleUsers())[0]
	row.User.Email = "bob@example.com"
	fields := Detail(row)
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
	}
	want := []string{"ID", "Name", "Email", "Phone", "Age", "Gender", "Address"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	if text := DetailText(row); !strings.Contains(text, "Email: bob@example.com\n") {
		t.Fatalf("DetailText = %q, want email line", text)
	}
}

func TestParseColumnID(t *testing.T) {
	specs := DefaultColumns()
	if id, ok := ParseColumnID(specs, "Number"); !ok || id != ColumnPhone {
		t.Fatalf("ParseColumnID(Number) = %q, %v", id, ok)
	}
	if id, ok := ParseColumnID(specs, "AGE"); !ok || id != ColumnAge {
		t.Fatalf("ParseColumnID(AGE) = %q, %v", id, ok)
	}
	if _, ok := ParseColumnID(specs, "salary"); ok {
		t.Fatalf("ParseColumnID(salary) succeeded")
	}
}
