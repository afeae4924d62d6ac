// ABOUTME: Tests for the filter engine: search, categorical, date, AND-combination
// ABOUTME: Covers idempotence, empty-query identity, and inclusive date bounds

package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type car struct {
	title   string
	plate   string
	status  string
	fuel    string
	price   float64
	created time.Time
}

func carView() *View[car] {
	return &View[car]{
		SearchFields: []FieldFunc[car]{
			func(c car) string { return c.title },
			func(c car) string { return c.plate },
		},
		Filters: map[string]FieldFunc[car]{
			"status": func(c car) string { return c.status },
			"fuel":   func(c car) string { return c.fuel },
		},
		Dates: map[string]TimeFunc[car]{
			"created": func(c car) time.Time { return c.created },
		},
		Price:    func(c car) float64 { return c.price },
		Date:     func(c car) time.Time { return c.created },
		PageSize: 3,
	}
}

func testCars() []car {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []car{
		{title: "Toyota Corolla", plate: "KA-01", status: "active", fuel: "petrol", price: 9000, created: base},
		{title: "Honda Civic", plate: "KA-02", status: "sold", fuel: "petrol", price: 7000, created: base.AddDate(0, 0, 1)},
		{title: "Tesla Model 3", plate: "KA-03", status: "active", fuel: "electric", price: 30000, created: base.AddDate(0, 0, 2)},
		{title: "Ford Focus", plate: "XY-44", status: "pending", fuel: "diesel", price: 7000, created: base.AddDate(0, 0, 3)},
		{title: "Toyota Hilux", plate: "XY-45", status: "active", fuel: "diesel", price: 15000, created: base.AddDate(0, 0, 4)},
	}
}

func TestView_Visible_EmptyStateReturnsAllInOrder(t *testing.T) {
	v := carView()
	cars := testCars()

	got := v.Visible(cars, State{})

	require.Len(t, got, len(cars))
	for i := range cars {
		assert.Equal(t, cars[i].plate, got[i].plate)
	}
}

func TestView_Visible_SentinelDisablesFilter(t *testing.T) {
	v := carView()
	cars := testCars()

	for _, sentinel := range []string{"", "all", "All", "ALL"} {
		got := v.Visible(cars, State{Filters: map[string]string{"status": sentinel}})
		assert.Len(t, got, len(cars), "sentinel %q should disable the filter", sentinel)
	}
}

func TestView_Visible_SearchMatchesAnyField(t *testing.T) {
	v := carView()
	cars := testCars()

	// Matches plate on one car, title on none
	got := v.Visible(cars, State{Query: "xy-44"})
	require.Len(t, got, 1)
	assert.Equal(t, "Ford Focus", got[0].title)

	// Case-insensitive title substring
	got = v.Visible(cars, State{Query: "toyota"})
	assert.Len(t, got, 2)
}

func TestView_Visible_SearchNoMatch(t *testing.T) {
	v := carView()

	got := v.Visible(testCars(), State{Query: "zeppelin"})
	assert.Empty(t, got)
}

func TestView_Visible_CategoricalEqualityIsCaseInsensitive(t *testing.T) {
	v := carView()

	got := v.Visible(testCars(), State{Filters: map[string]string{"status": "Active"}})
	assert.Len(t, got, 3)
}

func TestView_Visible_PredicatesANDTogether(t *testing.T) {
	v := carView()
	cars := testCars()

	s := State{
		Query:   "toyota",
		Filters: map[string]string{"status": "active", "fuel": "diesel"},
	}
	got := v.Visible(cars, s)

	require.Len(t, got, 1)
	assert.Equal(t, "Toyota Hilux", got[0].title)

	// Every visible item satisfies every active predicate; every hidden
	// item fails at least one.
	for _, c := range cars {
		if v.Matches(c, s) {
			assert.Contains(t, got, c)
		} else {
			assert.NotContains(t, got, c)
		}
	}
}

func TestView_Visible_StricterFilterNeverGrowsResult(t *testing.T) {
	v := carView()
	cars := testCars()

	loose := v.Visible(cars, State{Filters: map[string]string{"status": "active"}})
	strict := v.Visible(cars, State{Filters: map[string]string{"status": "active", "fuel": "diesel"}})

	assert.LessOrEqual(t, len(strict), len(loose))
}

func TestView_Visible_Idempotent(t *testing.T) {
	v := carView()
	cars := testCars()
	s := State{Query: "ka", Filters: map[string]string{"status": "active"}}

	first := v.Visible(cars, s)
	second := v.Visible(cars, s)

	assert.Equal(t, first, second)
}

func TestView_Visible_DoesNotMutateInput(t *testing.T) {
	v := carView()
	cars := testCars()
	want := testCars()

	v.Visible(cars, State{Sort: SortPriceAsc})

	assert.Equal(t, want, cars)
}

func TestView_Visible_DateRangeInclusiveBounds(t *testing.T) {
	v := carView()
	cars := testCars()

	from := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	s := State{Dates: map[string]Bound{"created": {From: &from, To: &to}}}

	got := v.Visible(cars, s)

	// Jan 2, 3, 4: both boundary days included
	require.Len(t, got, 3)
	assert.Equal(t, "Honda Civic", got[0].title)
	assert.Equal(t, "Toyota Hilux", got[2].title)
}

func TestView_Visible_DateRangeOpenEnded(t *testing.T) {
	v := carView()
	cars := testCars()

	from := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	got := v.Visible(cars, State{Dates: map[string]Bound{"created": {From: &from}}})

	assert.Len(t, got, 2)
}

func TestLastMonth_BoundaryInstantIncluded(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	b := LastMonth(now)

	exactlyOneMonthAgo := now.AddDate(0, -1, 0)
	assert.True(t, b.contains(exactlyOneMonthAgo))
	assert.True(t, b.contains(now))
	assert.False(t, b.contains(exactlyOneMonthAgo.Add(-time.Second)))
}

func TestLastYear_BoundaryInstantIncluded(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	b := LastYear(now)

	exactlyOneYearAgo := now.AddDate(-1, 0, 0)
	assert.True(t, b.contains(exactlyOneYearAgo))
	assert.False(t, b.contains(exactlyOneYearAgo.Add(-time.Second)))
}

func TestView_Matches_UnknownFilterNameIgnored(t *testing.T) {
	v := carView()

	s := State{Filters: map[string]string{"nonsense": "whatever"}}
	assert.True(t, v.Matches(testCars()[0], s))
}

func TestView_Rules_ApplyWithStateAccess(t *testing.T) {
	v := carView()
	v.Rules = []Rule[car]{
		func(c car, s State) bool {
			// Hide sold cars unless the status filter asks for them
			if s.FilterActive("status") {
				return true
			}
			return c.status != "sold"
		},
	}

	got := v.Visible(testCars(), State{})
	assert.Len(t, got, 4)

	got = v.Visible(testCars(), State{Filters: map[string]string{"status": "sold"}})
	assert.Len(t, got, 1)
}
