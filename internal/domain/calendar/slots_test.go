//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"grooming-salon/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appt struct {
	name  string
	start time.Time
	end   time.Time
}

func (a appt) Interval() (time.Time, time.Time) { return a.start, a.end }

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func at(loc *time.Location, day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, loc)
}

func names(items []appt) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.name)
	}
	return out
}

func TestBookingsForDate(t *testing.T) {
	loc := seoul(t)
	items := []appt{
		{name: "a", start: at(loc, 2, 10, 0), end: at(loc, 2, 11, 0)},
		{name: "b", start: at(loc, 3, 9, 0), end: at(loc, 3, 10, 0)},
		{name: "c", start: at(loc, 2, 0, 30), end: at(loc, 2, 1, 30)},
		{name: "d", start: at(loc, 2, 23, 59), end: at(loc, 3, 0, 59)},
	}

	got := calendar.BookingsForDate(items, at(loc, 2, 0, 0), loc)
	assert.Equal(t, []string{"a", "c", "d"}, names(got), "order preserved, whole local day")

	assert.Empty(t, calendar.BookingsForDate(items, at(loc, 5, 0, 0), loc))
	assert.Empty(t, calendar.BookingsForDate([]appt(nil), at(loc, 2, 0, 0), loc))
}

// 00:30 in Seoul is the previous day in UTC; the configured zone decides.
func TestBookingsForDate_TimezoneDecidesDay(t *testing.T) {
	loc := seoul(t)
	early := appt{name: "early", start: at(loc, 2, 0, 30), end: at(loc, 2, 1, 30)}
	items := []appt{early}

	assert.Len(t, calendar.BookingsForDate(items, at(loc, 2, 12, 0), loc), 1)

	utcDay := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Len(t, calendar.BookingsForDate(items, utcDay, time.UTC), 1)
	assert.Empty(t, calendar.BookingsForDate(items, utcDay, loc), "Jan 1 UTC noon is Jan 1 in Seoul, booking is Jan 2")
}

func TestBookingForSlot(t *testing.T) {
	loc := seoul(t)
	day := at(loc, 2, 0, 0)
	items := []appt{
		{name: "nine", start: at(loc, 2, 9, 0), end: at(loc, 2, 10, 0)},
		{name: "ten-long", start: at(loc, 2, 10, 0), end: at(loc, 2, 13, 0)},
		{name: "ten-second", start: at(loc, 2, 10, 30), end: at(loc, 2, 11, 30)},
		{name: "other-day", start: at(loc, 3, 14, 0), end: at(loc, 3, 15, 0)},
		{name: "eight", start: at(loc, 2, 8, 0), end: at(loc, 2, 9, 0)},
		{name: "twenty", start: at(loc, 2, 20, 0), end: at(loc, 2, 21, 0)},
	}

	cases := []struct {
		name  string
		hour  int
		want  string
		found bool
	}{
		{name: "single booking at hour", hour: 9, want: "nine", found: true},
		{name: "collision returns first listed", hour: 10, want: "ten-long", found: true},
		{name: "spanned hour is not anchored", hour: 11, found: false},
		{name: "empty hour", hour: 14, found: false},
		{name: "last slot", hour: 20, want: "twenty", found: true},
		{name: "before grid", hour: 8, found: false},
		{name: "after grid", hour: 21, found: false},
		{name: "negative hour", hour: -1, found: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := calendar.BookingForSlot(items, day, tc.hour, loc)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.want, got.name)
			}
		})
	}
}

func TestSlotHours(t *testing.T) {
	hours := calendar.SlotHours()
	assert.Len(t, hours, calendar.SlotCount)
	assert.Equal(t, 9, hours[0])
	assert.Equal(t, 20, hours[len(hours)-1])
}

func TestOverlaps(t *testing.T) {
	loc := seoul(t)
	assert.True(t, calendar.Overlaps(at(loc, 2, 10, 0), at(loc, 2, 12, 0), at(loc, 2, 11, 0), at(loc, 2, 13, 0)))
	assert.False(t, calendar.Overlaps(at(loc, 2, 10, 0), at(loc, 2, 11, 0), at(loc, 2, 11, 0), at(loc, 2, 12, 0)), "touching ends do not overlap")
	assert.True(t, calendar.Overlaps(at(loc, 2, 10, 0), at(loc, 2, 14, 0), at(loc, 2, 11, 0), at(loc, 2, 12, 0)), "containment")
}
