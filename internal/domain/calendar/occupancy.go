package calendar

import (
	"time"

	"grooming-salon/internal/pkg/timezone"
)

type Slot[T Scheduled] struct {
	Hour  int
	Start time.Time
	End   time.Time
	// Anchored is the booking starting in this slot, as BookingForSlot returns it.
	Anchored *T
	// Occupants are all items whose interval overlaps the slot.
	Occupants []T
}

func (s Slot[T]) Occupied() bool {
	return len(s.Occupants) > 0
}

// DaySlots lays out the fixed grid for date with both anchor and occupancy.
func DaySlots[T Scheduled](items []T, date time.Time, loc *time.Location) []Slot[T] {
	slots := make([]Slot[T], 0, SlotCount)
	for _, h := range SlotHours() {
		start, end := SlotBounds(date, h, loc)
		slot := Slot[T]{Hour: h, Start: start, End: end}
		if it, ok := BookingForSlot(items, date, h, loc); ok {
			slot.Anchored = &it
		}
		slot.Occupants = Occupancy(items, start, end)
		slots = append(slots, slot)
	}
	return slots
}

// Occupancy returns the items overlapping [from, to) in input order.
func Occupancy[T Scheduled](items []T, from, to time.Time) []T {
	out := make([]T, 0)
	for _, it := range items {
		s, e := it.Interval()
		if Overlaps(s, e, from, to) {
			out = append(out, it)
		}
	}
	return out
}

type Conflict[T Scheduled] struct {
	First  T
	Second T
}

// Conflicts reports every overlapping pair, in input order.
func Conflicts[T Scheduled](items []T) []Conflict[T] {
	var out []Conflict[T]
	for i := 0; i < len(items); i++ {
		as, ae := items[i].Interval()
		for j := i + 1; j < len(items); j++ {
			bs, be := items[j].Interval()
			if Overlaps(as, ae, bs, be) {
				out = append(out, Conflict[T]{First: items[i], Second: items[j]})
			}
		}
	}
	return out
}

// FreeSlots lists the hours of the grid no item overlaps.
func FreeSlots[T Scheduled](items []T, date time.Time, loc *time.Location) []int {
	var free []int
	for _, h := range SlotHours() {
		start, end := SlotBounds(date, h, loc)
		if len(Occupancy(items, start, end)) == 0 {
			free = append(free, h)
		}
	}
	return free
}

type Day[T Scheduled] struct {
	Date     time.Time
	InMonth  bool
	Bookings []T
}

// MonthGrid builds full weeks, Sunday first, covering the month. Days outside
// the month are included to fill the first and last week.
func MonthGrid[T Scheduled](items []T, year int, month time.Month, loc *time.Location) [][]Day[T] {
	first, last := timezone.MonthRange(year, month, loc)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	lastDay := timezone.StartOfDay(last, loc)
	gridEnd := lastDay.AddDate(0, 0, int(time.Saturday-lastDay.Weekday()))

	var weeks [][]Day[T]
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 7) {
		week := make([]Day[T], 0, 7)
		for i := 0; i < 7; i++ {
			day := d.AddDate(0, 0, i)
			week = append(week, Day[T]{
				Date:     day,
				InMonth:  day.Month() == month,
				Bookings: BookingsForDate(items, day, loc),
			})
		}
		weeks = append(weeks, week)
	}
	return weeks
}
