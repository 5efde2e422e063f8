package timezone

import (
	"time"

	"grooming-salon/internal/pkg/errs"
)

const DefaultTimezone = "Asia/Seoul"

// Load resolves an IANA zone name. An empty name falls back to DefaultTimezone.
func Load(tz string) (*time.Location, error) {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errs.Wrapf(err, "unknown timezone %q", tz)
	}
	return loc, nil
}

// StartOfDay returns local midnight of the day t falls on in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// MonthRange returns [first instant of the month, last instant of the month] in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
