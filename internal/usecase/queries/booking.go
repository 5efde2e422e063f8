package queries

import (
	"context"
	"time"

	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/domain/calendar"
	"grooming-salon/internal/domain/revenue"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/pkg/timezone"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrInvalidRange    = errs.Mark(errs.New("start must not be after end"), errs.ErrValidation)
	ErrInvalidMonth    = errs.Mark(errs.New("month must be between 1 and 12"), errs.ErrValidation)
)

type BookingReadStore interface {
	// FindRange returns bookings with start_time in [start, end], ordered by start_time.
	FindRange(ctx context.Context, start, end time.Time) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type SlotView struct {
	Hour  int       `json:"hour"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	// Booking is the one starting in this slot.
	Booking  *BookingView `json:"booking,omitempty"`
	Occupied bool         `json:"occupied"`

	// OccupantIDs are the non-cancelled bookings overlapping the slot.
	OccupantIDs []uuid.UUID `json:"occupant_ids"`
}

type ConflictView struct {
	First  uuid.UUID `json:"first"`
	Second uuid.UUID `json:"second"`
}

type DayView struct {
	Date      string         `json:"date"`
	Bookings  []*BookingView `json:"bookings"`
	Slots     []SlotView     `json:"slots"`
	FreeHours []int          `json:"free_hours"`
	Conflicts []ConflictView `json:"conflicts"`
}

type DayCell struct {
	Date     string         `json:"date"`
	InMonth  bool           `json:"in_month"`
	Bookings []*BookingView `json:"bookings"`
}

type MonthGridView struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Weeks [][]DayCell `json:"weeks"`
}

type QuoteView struct {
	DurationHours float64       `json:"duration_hours"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	TotalPrice    int64         `json:"total_price"`
	Services      []ServiceView `json:"services"`
}

type BookingQueries interface {
	ListRange(ctx context.Context, start, end time.Time) ([]*BookingView, error)
	ListMonth(ctx context.Context, year int, month time.Month) ([]*BookingView, error)
	Get(ctx context.Context, id uuid.UUID) (*BookingView, error)
	Day(ctx context.Context, date time.Time) (*DayView, error)
	MonthGrid(ctx context.Context, year int, month time.Month) (*MonthGridView, error)
	Quote(ctx context.Context, serviceIDs []uuid.UUID, start time.Time) (*QuoteView, error)
}

type bookingQueriesImpl struct {
	store    BookingReadStore
	services ServiceQueries
	calc     *booking.Calculator
	loc      *time.Location
}

func NewBookingQueries(store BookingReadStore, services ServiceQueries, calc *booking.Calculator, loc *time.Location) BookingQueries {
	return &bookingQueriesImpl{store: store, services: services, calc: calc, loc: loc}
}

func (q *bookingQueriesImpl) ListRange(ctx context.Context, start, end time.Time) ([]*BookingView, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}
	return q.findRange(ctx, start, end)
}

func (q *bookingQueriesImpl) ListMonth(ctx context.Context, year int, month time.Month) ([]*BookingView, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}
	start, end := timezone.MonthRange(year, month, q.loc)
	return q.findRange(ctx, start, end)
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to get booking")
	}
	if err := q.resolve(ctx, []*BookingView{v}); err != nil {
		return nil, err
	}
	return v, nil
}

// Day anchors every booking of the day to its starting slot and computes
// occupancy from the non-cancelled ones.
func (q *bookingQueriesImpl) Day(ctx context.Context, date time.Time) (*DayView, error) {
	dayStart := timezone.StartOfDay(date, q.loc)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	all, err := q.findRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	bookings := calendar.BookingsForDate(all, date, q.loc)
	active := activeOnly(bookings)

	slots := make([]SlotView, 0, calendar.SlotCount)
	for _, h := range calendar.SlotHours() {
		start, end := calendar.SlotBounds(date, h, q.loc)
		sv := SlotView{Hour: h, Start: start, End: end, OccupantIDs: []uuid.UUID{}}
		if b, ok := calendar.BookingForSlot(bookings, date, h, q.loc); ok {
			sv.Booking = b
		}
		for _, o := range calendar.Occupancy(active, start, end) {
			sv.OccupantIDs = append(sv.OccupantIDs, o.ID)
		}
		sv.Occupied = len(sv.OccupantIDs) > 0
		slots = append(slots, sv)
	}

	conflicts := make([]ConflictView, 0)
	for _, c := range calendar.Conflicts(active) {
		conflicts = append(conflicts, ConflictView{First: c.First.ID, Second: c.Second.ID})
	}

	free := calendar.FreeSlots(active, date, q.loc)
	if free == nil {
		free = []int{}
	}

	return &DayView{
		Date:      dayStart.Format(revenue.DateLayout),
		Bookings:  bookings,
		Slots:     slots,
		FreeHours: free,
		Conflicts: conflicts,
	}, nil
}

func (q *bookingQueriesImpl) MonthGrid(ctx context.Context, year int, month time.Month) (*MonthGridView, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}
	first, last := timezone.MonthRange(year, month, q.loc)
	// the grid spills into neighbouring months to complete its weeks
	from := first.AddDate(0, 0, -6)
	to := last.AddDate(0, 0, 6)
	bookings, err := q.findRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	grid := calendar.MonthGrid(bookings, year, month, q.loc)
	weeks := make([][]DayCell, 0, len(grid))
	for _, week := range grid {
		cells := make([]DayCell, 0, len(week))
		for _, d := range week {
			cells = append(cells, DayCell{
				Date:     d.Date.Format(revenue.DateLayout),
				InMonth:  d.InMonth,
				Bookings: d.Bookings,
			})
		}
		weeks = append(weeks, cells)
	}
	return &MonthGridView{Year: year, Month: int(month), Weeks: weeks}, nil
}

// Quote previews what a booking with this selection would derive.
func (q *bookingQueriesImpl) Quote(ctx context.Context, serviceIDs []uuid.UUID, start time.Time) (*QuoteView, error) {
	services, err := q.services.List(ctx)
	if err != nil {
		return nil, err
	}
	quote := q.calc.Quote(serviceIDs, toCatalog(services), start)

	idx := serviceIndex(services)
	resolved := make([]ServiceView, 0, len(quote.Services))
	for _, s := range quote.Services {
		resolved = append(resolved, idx[s.ID()])
	}
	return &QuoteView{
		DurationHours: quote.Hours,
		StartTime:     start,
		EndTime:       quote.EndTime,
		TotalPrice:    quote.TotalPrice,
		Services:      resolved,
	}, nil
}

func (q *bookingQueriesImpl) findRange(ctx context.Context, start, end time.Time) ([]*BookingView, error) {
	rows, err := q.store.FindRange(ctx, start, end)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	if err := q.resolve(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (q *bookingQueriesImpl) resolve(ctx context.Context, rows []*BookingView) error {
	services, err := q.services.List(ctx)
	if err != nil {
		return err
	}
	resolveServices(rows, serviceIndex(services))
	return nil
}

func activeOnly(bookings []*BookingView) []*BookingView {
	out := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != booking.StatusCancelled.String() {
			out = append(out, b)
		}
	}
	return out
}
