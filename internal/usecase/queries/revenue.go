package queries

import (
	"bytes"
	"context"
	"time"

	"grooming-salon/internal/domain/revenue"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidPeriod = errs.Mark(errs.New("invalid revenue period"), errs.ErrValidation)

// RevenueRow is a completed booking as stored.
type RevenueRow struct {
	StartTime  time.Time
	TotalPrice *int64
	ServiceIDs []uuid.UUID
}

type RevenueReadStore interface {
	// CompletedBetween returns completed bookings with start_time in [start, end].
	CompletedBetween(ctx context.Context, start, end time.Time) ([]RevenueRow, error)
}

type PeriodView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

type RevenueReport struct {
	Period    PeriodView             `json:"period"`
	Summary   revenue.Summary        `json:"summary"`
	Daily     []revenue.Daily        `json:"daily"`
	ByService []revenue.ByServiceRow `json:"byService"`
	Previous  revenue.Summary        `json:"previous"`
	Growth    float64                `json:"growth"`
}

type RevenueExport struct {
	FileName string
	Content  []byte
}

type RevenueQueries interface {
	// Period resolves a preset name, or a custom YYYY-MM-DD start/end pair when
	// preset is empty.
	Period(preset, startDate, endDate string) (revenue.Period, error)
	Report(ctx context.Context, p revenue.Period) (*RevenueReport, error)
	Export(ctx context.Context, p revenue.Period) (*RevenueExport, error)
}

type revenueQueriesImpl struct {
	store    RevenueReadStore
	services ServiceQueries
	clock    clock.Clock
	loc      *time.Location
}

func NewRevenueQueries(store RevenueReadStore, services ServiceQueries, clk clock.Clock, loc *time.Location) RevenueQueries {
	return &revenueQueriesImpl{store: store, services: services, clock: clk, loc: loc}
}

func (q *revenueQueriesImpl) Period(preset, startDate, endDate string) (revenue.Period, error) {
	if preset != "" {
		p, err := revenue.Resolve(revenue.Preset(preset), q.clock.Now(), q.loc)
		if err != nil {
			return revenue.Period{}, errs.Mark(err, errs.ErrValidation)
		}
		return p, nil
	}
	if startDate == "" || endDate == "" {
		p, _ := revenue.Resolve(revenue.PresetThisMonth, q.clock.Now(), q.loc)
		return p, nil
	}

	start, err := time.ParseInLocation(revenue.DateLayout, startDate, q.loc)
	if err != nil {
		return revenue.Period{}, errs.Wrap(ErrInvalidPeriod, "start")
	}
	end, err := time.ParseInLocation(revenue.DateLayout, endDate, q.loc)
	if err != nil {
		return revenue.Period{}, errs.Wrap(ErrInvalidPeriod, "end")
	}
	p, err := revenue.NewPeriod(start, end.AddDate(0, 0, 1).Add(-time.Nanosecond), startDate+"~"+endDate)
	if err != nil {
		return revenue.Period{}, errs.Mark(err, errs.ErrValidation)
	}
	return p, nil
}

func (q *revenueQueriesImpl) Report(ctx context.Context, p revenue.Period) (*RevenueReport, error) {
	current, err := q.records(ctx, p)
	if err != nil {
		return nil, err
	}
	previous, err := q.records(ctx, p.Previous())
	if err != nil {
		return nil, err
	}

	summary := revenue.Summarize(current)
	prevSummary := revenue.Summarize(previous)
	return &RevenueReport{
		Period:    PeriodView{Start: p.Start, End: p.End, Label: p.Label},
		Summary:   summary,
		Daily:     revenue.ByDate(current, q.loc),
		ByService: revenue.ByService(current),
		Previous:  prevSummary,
		Growth:    revenue.Growth(float64(summary.Total), float64(prevSummary.Total)),
	}, nil
}

func (q *revenueQueriesImpl) Export(ctx context.Context, p revenue.Period) (*RevenueExport, error) {
	records, err := q.records(ctx, p)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := revenue.WriteCSV(&buf, revenue.ByDate(records, q.loc)); err != nil {
		return nil, errs.Wrap(err, "failed to write revenue csv")
	}
	return &RevenueExport{
		FileName: revenue.ExportFileName(p.Label, q.clock.Now(), q.loc),
		Content:  buf.Bytes(),
	}, nil
}

// records attaches the current catalog name and price to each selected service.
func (q *revenueQueriesImpl) records(ctx context.Context, p revenue.Period) ([]revenue.Record, error) {
	rows, err := q.store.CompletedBetween(ctx, p.Start, p.End)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load completed bookings")
	}
	services, err := q.services.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := serviceIndex(services)

	out := make([]revenue.Record, 0, len(rows))
	for _, r := range rows {
		rec := revenue.Record{StartTime: r.StartTime, TotalPrice: r.TotalPrice}
		for _, id := range r.ServiceIDs {
			if s, ok := idx[id]; ok {
				rec.Services = append(rec.Services, revenue.ServiceLine{Name: s.Name, Price: s.Price})
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
