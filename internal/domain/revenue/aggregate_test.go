//go:build unit

package revenue_test

import (
	"testing"
	"time"

	"grooming-salon/internal/domain/revenue"
	"grooming-salon/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func sampleRecords(loc *time.Location) []revenue.Record {
	return []revenue.Record{
		{
			StartTime:  time.Date(2024, 3, 2, 10, 0, 0, 0, loc),
			TotalPrice: ptr.Of[int64](55000),
			Services: []revenue.ServiceLine{
				{Name: "목욕", Price: ptr.Of[int64](30000)},
				{Name: "부분미용", Price: ptr.Of[int64](25000)},
			},
		},
		{
			// 00:30 in Seoul is still the previous day in UTC.
			StartTime:  time.Date(2024, 3, 1, 0, 30, 0, 0, loc),
			TotalPrice: ptr.Of[int64](30000),
			Services:   []revenue.ServiceLine{{Name: "목욕", Price: ptr.Of[int64](30000)}},
		},
		{
			StartTime:  time.Date(2024, 3, 2, 15, 0, 0, 0, loc),
			TotalPrice: nil,
			Services:   []revenue.ServiceLine{{Name: "상담", Price: nil}},
		},
	}
}

func TestByDate(t *testing.T) {
	loc := seoul(t)

	got := revenue.ByDate(sampleRecords(loc), loc)

	want := []revenue.Daily{
		{Date: "2024-03-01", Total: 30000, Bookings: 1},
		{Date: "2024-03-02", Total: 55000, Bookings: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ByDate mismatch (-want +got):\n%s", diff)
	}
}

func TestByDate_Empty(t *testing.T) {
	assert.Empty(t, revenue.ByDate(nil, seoul(t)))
}

func TestByService(t *testing.T) {
	loc := seoul(t)

	got := revenue.ByService(sampleRecords(loc))

	require.Len(t, got, 3)
	assert.Equal(t, "목욕", got[0].Name)
	assert.Equal(t, int64(60000), got[0].Revenue)
	assert.Equal(t, 2, got[0].Count)
	assert.InDelta(t, 70.588, got[0].Percentage, 0.001)

	assert.Equal(t, "부분미용", got[1].Name)
	assert.Equal(t, int64(25000), got[1].Revenue)

	assert.Equal(t, "상담", got[2].Name)
	assert.Equal(t, int64(0), got[2].Revenue)
	assert.Equal(t, 1, got[2].Count)
	assert.Zero(t, got[2].Percentage)
}

func TestByService_ZeroTotalHasZeroPercentages(t *testing.T) {
	got := revenue.ByService([]revenue.Record{
		{Services: []revenue.ServiceLine{{Name: "a"}, {Name: "b"}}},
	})

	require.Len(t, got, 2)
	for _, row := range got {
		assert.Zero(t, row.Percentage)
	}
	assert.Equal(t, "a", got[0].Name)
}

func TestSummarize(t *testing.T) {
	loc := seoul(t)

	got := revenue.Summarize(sampleRecords(loc))

	assert.Equal(t, int64(85000), got.Total)
	assert.Equal(t, 3, got.Bookings)
	assert.InDelta(t, 28333.33, got.AvgPerBooking, 0.01)

	assert.Equal(t, revenue.Summary{}, revenue.Summarize(nil))
}

func TestGrowth(t *testing.T) {
	cases := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{name: "both zero", current: 0, previous: 0, want: 0},
		{name: "from nothing", current: 5000, previous: 0, want: 100},
		{name: "increase", current: 150, previous: 100, want: 50},
		{name: "decrease", current: 50, previous: 200, want: -75},
		{name: "rounded", current: 2, previous: 3, want: -33.33},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, revenue.Growth(tc.current, tc.previous), 0.0001)
		})
	}
}
