package revenue

import (
	"time"

	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/pkg/timezone"
)

var (
	ErrUnknownPreset = errs.New("unknown revenue period")
	ErrInvalidRange  = errs.New("period start must not be after end")
)

type Preset string

const (
	PresetToday      Preset = "today"
	PresetYesterday  Preset = "yesterday"
	PresetLast7Days  Preset = "last7days"
	PresetLast30Days Preset = "last30days"
	PresetThisMonth  Preset = "thisMonth"
	PresetLastMonth  Preset = "lastMonth"
)

// Period is an inclusive [Start, End] range. Label is shown in exports.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

func NewPeriod(start, end time.Time, label string) (Period, error) {
	if start.After(end) {
		return Period{}, ErrInvalidRange
	}
	return Period{Start: start, End: end, Label: label}, nil
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	return timezone.StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Resolve turns a preset name into a period in loc relative to now.
func Resolve(p Preset, now time.Time, loc *time.Location) (Period, error) {
	today := timezone.StartOfDay(now, loc)
	switch p {
	case PresetToday:
		return Period{Start: today, End: endOfDay(today, loc), Label: "오늘"}, nil
	case PresetYesterday:
		y := today.AddDate(0, 0, -1)
		return Period{Start: y, End: endOfDay(y, loc), Label: "어제"}, nil
	case PresetLast7Days:
		return Period{Start: today.AddDate(0, 0, -6), End: endOfDay(today, loc), Label: "최근 7일"}, nil
	case PresetLast30Days:
		return Period{Start: today.AddDate(0, 0, -29), End: endOfDay(today, loc), Label: "최근 30일"}, nil
	case PresetThisMonth:
		first, _ := timezone.MonthRange(today.Year(), today.Month(), loc)
		return Period{Start: first, End: endOfDay(today, loc), Label: "이번 달"}, nil
	case PresetLastMonth:
		prev := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, loc)
		first, last := timezone.MonthRange(prev.Year(), prev.Month(), loc)
		return Period{Start: first, End: last, Label: "지난 달"}, nil
	default:
		return Period{}, ErrUnknownPreset
	}
}

// Previous is the window of the same length immediately before p.
func (p Period) Previous() Period {
	length := p.End.Sub(p.Start)
	end := p.Start.Add(-time.Nanosecond)
	return Period{Start: end.Add(-length), End: end, Label: p.Label}
}
