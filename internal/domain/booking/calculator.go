package booking

import (
	"math"
	"time"

	"grooming-salon/internal/domain/catalog"

	"github.com/google/uuid"
)

// ISOLayout matches the millisecond UTC form stored by the booking form,
// e.g. 2024-01-01T12:00:00.000Z.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// Calculator derives a booking's duration and price from its selected services.
// All methods are total: unknown ids are ignored and nothing is validated.
type Calculator struct {
	rules RuleTable
}

func NewCalculator(rules RuleTable) *Calculator {
	return &Calculator{rules: rules}
}

func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultRules())
}

func (c *Calculator) Rules() RuleTable {
	return c.rules
}

// Resolve looks up the selected ids in the catalog, in selection order,
// dropping ids that are not in it. Each service appears once however many
// times it was selected.
func Resolve(selected []uuid.UUID, services []*catalog.Service) []*catalog.Service {
	if len(selected) == 0 {
		return nil
	}
	idx := catalog.Index(services)
	seen := make(map[uuid.UUID]struct{}, len(selected))
	resolved := make([]*catalog.Service, 0, len(selected))
	for _, id := range selected {
		s, ok := idx[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		resolved = append(resolved, s)
	}
	return resolved
}

// Duration returns the booking length in hours.
func (c *Calculator) Duration(selected []uuid.UUID, services []*catalog.Service) float64 {
	return c.durationOf(Resolve(selected, services))
}

func (c *Calculator) durationOf(resolved []*catalog.Service) float64 {
	if len(resolved) == 0 {
		return 0
	}

	tags := make([]catalog.Tag, 0, len(resolved))
	for _, s := range resolved {
		tags = append(tags, s.Tag())
	}
	if rule, ok := c.rules.Match(tags); ok {
		return rule.ResultHours
	}

	longest := resolved[0].DurationHours()
	for _, s := range resolved[1:] {
		longest = math.Max(longest, s.DurationHours())
	}
	return longest
}

// TotalPrice sums the prices of the selected services. A service selected
// twice is charged once.
func (c *Calculator) TotalPrice(selected []uuid.UUID, services []*catalog.Service) int64 {
	return priceOf(Resolve(selected, services))
}

func priceOf(resolved []*catalog.Service) int64 {
	var total int64
	for _, s := range resolved {
		total += s.PriceOrZero()
	}
	return total
}

// EndTime adds a fractional number of hours to start.
func EndTime(start time.Time, hours float64) time.Time {
	return start.Add(time.Duration(math.Round(hours * float64(time.Hour))))
}

// zone-less forms a browser date input produces
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ComputeEndTime is the string form of EndTime. The result is always UTC.
// A start without an offset is read as wall time in loc (UTC when nil);
// a bare date is midnight UTC.
func ComputeEndTime(startISO string, hours float64, loc *time.Location) (string, error) {
	start, err := ParseStart(startISO, loc)
	if err != nil {
		return "", err
	}
	return FormatISO(EndTime(start, hours)), nil
}

func ParseStart(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidTimestamp
}

func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// Quote is everything a booking derives from its service selection.
type Quote struct {
	Services   []*catalog.Service
	Hours      float64
	EndTime    time.Time
	TotalPrice int64
}

func (c *Calculator) Quote(selected []uuid.UUID, services []*catalog.Service, start time.Time) Quote {
	resolved := Resolve(selected, services)
	hours := c.durationOf(resolved)
	return Quote{
		Services:   resolved,
		Hours:      hours,
		EndTime:    EndTime(start, hours),
		TotalPrice: priceOf(resolved),
	}
}
