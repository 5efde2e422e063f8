package calendar

import (
	"time"

	"grooming-salon/internal/pkg/timezone"
)

const (
	SlotStartHour = 9
	SlotEndHour   = 20
	SlotCount     = SlotEndHour - SlotStartHour + 1
)

// Scheduled is anything with a start and end instant.
type Scheduled interface {
	Interval() (start, end time.Time)
}

func ValidSlotHour(hour int) bool {
	return hour >= SlotStartHour && hour <= SlotEndHour
}

// SlotHours lists the labels of the fixed day grid, 9 through 20.
func SlotHours() []int {
	hours := make([]int, 0, SlotCount)
	for h := SlotStartHour; h <= SlotEndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// BookingsForDate keeps the items starting on date's calendar day in loc.
// Input order is preserved.
func BookingsForDate[T Scheduled](items []T, date time.Time, loc *time.Location) []T {
	out := make([]T, 0)
	for _, it := range items {
		start, _ := it.Interval()
		if timezone.SameDay(start, date, loc) {
			out = append(out, it)
		}
	}
	return out
}

// BookingForSlot returns the first item of the day whose local start hour is hour.
// Only the starting slot is matched; an item running into later slots is not
// returned for them (see Occupancy).
func BookingForSlot[T Scheduled](items []T, date time.Time, hour int, loc *time.Location) (T, bool) {
	var zero T
	if !ValidSlotHour(hour) {
		return zero, false
	}
	for _, it := range BookingsForDate(items, date, loc) {
		start, _ := it.Interval()
		if start.In(loc).Hour() == hour {
			return it, true
		}
	}
	return zero, false
}

// SlotBounds returns the [start, end) instants of the hour slot on date's day.
func SlotBounds(date time.Time, hour int, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.In(loc).Date()
	start := time.Date(y, m, d, hour, 0, 0, 0, loc)
	return start, start.Add(time.Hour)
}

// Overlaps compares half-open intervals [aStart, aEnd) and [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
