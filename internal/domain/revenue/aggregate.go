package revenue

import (
	"math"
	"sort"
	"time"
)

// ServiceLine is one service of a completed booking at its catalog price.
type ServiceLine struct {
	Name  string
	Price *int64
}

// Record is a completed booking as revenue sees it.
type Record struct {
	StartTime  time.Time
	TotalPrice *int64
	Services   []ServiceLine
}

type Daily struct {
	Date     string `json:"date"`
	Total    int64  `json:"total"`
	Bookings int    `json:"bookings"`
}

type ByServiceRow struct {
	Name       string  `json:"serviceName"`
	Revenue    int64   `json:"revenue"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Summary struct {
	Total         int64   `json:"total"`
	Bookings      int     `json:"bookings"`
	AvgPerBooking float64 `json:"avgPerBooking"`
}

const DateLayout = "2006-01-02"

func value(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// ByDate groups records by their local start date, oldest first.
func ByDate(records []Record, loc *time.Location) []Daily {
	acc := map[string]*Daily{}
	for _, r := range records {
		key := r.StartTime.In(loc).Format(DateLayout)
		d, ok := acc[key]
		if !ok {
			d = &Daily{Date: key}
			acc[key] = d
		}
		d.Total += value(r.TotalPrice)
		d.Bookings++
	}

	out := make([]Daily, 0, len(acc))
	for _, d := range acc {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ByService attributes each service its catalog price. Percentages are
// shares of the attributed sum, not of booking totals.
func ByService(records []Record) []ByServiceRow {
	acc := map[string]*ByServiceRow{}
	var total int64
	for _, r := range records {
		for _, s := range r.Services {
			row, ok := acc[s.Name]
			if !ok {
				row = &ByServiceRow{Name: s.Name}
				acc[s.Name] = row
			}
			p := value(s.Price)
			row.Revenue += p
			row.Count++
			total += p
		}
	}

	out := make([]ByServiceRow, 0, len(acc))
	for _, row := range acc {
		if total > 0 {
			row.Percentage = float64(row.Revenue) / float64(total) * 100
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func Summarize(records []Record) Summary {
	s := Summary{Bookings: len(records)}
	for _, r := range records {
		s.Total += value(r.TotalPrice)
	}
	if s.Bookings > 0 {
		s.AvgPerBooking = float64(s.Total) / float64(s.Bookings)
	}
	return s
}

// Growth is the percent change from previous to current. With no previous
// revenue any positive current counts as 100%.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return math.Round((current-previous)/previous*100*100) / 100
}
