//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"grooming-salon/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySlots(t *testing.T) {
	loc := seoul(t)
	day := at(loc, 2, 0, 0)
	items := []appt{
		{name: "long", start: at(loc, 2, 10, 0), end: at(loc, 2, 13, 0)},
		{name: "short", start: at(loc, 2, 15, 30), end: at(loc, 2, 16, 30)},
	}

	slots := calendar.DaySlots(items, day, loc)
	require.Len(t, slots, calendar.SlotCount)

	byHour := map[int]calendar.Slot[appt]{}
	for _, s := range slots {
		byHour[s.Hour] = s
	}

	require.NotNil(t, byHour[10].Anchored)
	assert.Equal(t, "long", byHour[10].Anchored.name)
	assert.True(t, byHour[11].Occupied(), "multi-hour booking occupies later slots")
	assert.Nil(t, byHour[11].Anchored)
	assert.True(t, byHour[12].Occupied())
	assert.False(t, byHour[13].Occupied(), "end is exclusive")
	assert.True(t, byHour[15].Occupied())
	assert.True(t, byHour[16].Occupied())
	assert.False(t, byHour[9].Occupied())

	assert.Equal(t, at(loc, 2, 9, 0), byHour[9].Start)
	assert.Equal(t, at(loc, 2, 10, 0), byHour[9].End)
}

func TestFreeSlots(t *testing.T) {
	loc := seoul(t)
	items := []appt{
		{name: "morning", start: at(loc, 2, 9, 0), end: at(loc, 2, 12, 0)},
		{name: "evening", start: at(loc, 2, 18, 0), end: at(loc, 2, 21, 0)},
	}

	free := calendar.FreeSlots(items, at(loc, 2, 0, 0), loc)
	assert.Equal(t, []int{12, 13, 14, 15, 16, 17}, free)
}

func TestConflicts(t *testing.T) {
	loc := seoul(t)
	items := []appt{
		{name: "a", start: at(loc, 2, 10, 0), end: at(loc, 2, 13, 0)},
		{name: "b", start: at(loc, 2, 12, 0), end: at(loc, 2, 13, 0)},
		{name: "c", start: at(loc, 2, 13, 0), end: at(loc, 2, 14, 0)},
	}

	got := calendar.Conflicts(items)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].First.name)
	assert.Equal(t, "b", got[0].Second.name)

	assert.Empty(t, calendar.Conflicts(items[1:]))
}

func TestMonthGrid(t *testing.T) {
	loc := seoul(t)
	items := []appt{
		{name: "new-year", start: at(loc, 1, 10, 0), end: at(loc, 1, 11, 0)},
		{name: "end", start: at(loc, 31, 19, 0), end: at(loc, 31, 20, 0)},
	}

	// January 2024 starts on Monday and ends on Wednesday.
	weeks := calendar.MonthGrid(items, 2024, time.January, loc)
	require.Len(t, weeks, 5)

	first := weeks[0]
	assert.Equal(t, time.Sunday, first[0].Date.Weekday())
	assert.Equal(t, 31, first[0].Date.Day())
	assert.False(t, first[0].InMonth)
	assert.True(t, first[1].InMonth)
	require.Len(t, first[1].Bookings, 1)
	assert.Equal(t, "new-year", first[1].Bookings[0].name)

	last := weeks[len(weeks)-1]
	assert.Equal(t, time.Saturday, last[6].Date.Weekday())
	assert.Equal(t, 3, last[6].Date.Day())
	assert.Equal(t, "end", last[3].Bookings[0].name)

	for _, w := range weeks {
		assert.Len(t, w, 7)
	}
}
