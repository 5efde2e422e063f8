package booking

import (
	"strings"
	"time"

	"grooming-salon/internal/domain/catalog"
	"grooming-salon/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCustomerRequired  = errs.New("customer is required")
	ErrNoServices        = errs.New("at least one service must be selected")
	ErrUnknownService    = errs.New("selected service does not exist")
	ErrStartRequired     = errs.New("start time is required")
	ErrInvalidStatus     = errs.New("invalid booking status")
	ErrInvalidColor      = errs.New("color must be #RRGGBB")
	ErrInvalidTimestamp  = errs.New("invalid ISO-8601 timestamp")
	ErrRuleWithoutTags   = errs.New("combination rule needs at least one tag")
	ErrRuleInvalidHours  = errs.New("combination rule hours must be positive")
	ErrCreatorRequired   = errs.New("creator is required")
	ErrMemoTooLong       = errs.New("memo is too long")
	ErrBookingConflict   = errs.New("booking overlaps another booking")
	ErrDuplicatedService = errs.New("service selected more than once")
)

const MaxMemoLength = 1000

// Booking is a scheduled grooming appointment. End time and total price are
// derived from the selected services when the selection or start changes.
type Booking struct {
	id         uuid.UUID
	customerID uuid.UUID
	serviceIDs []uuid.UUID
	startTime  time.Time
	endTime    time.Time
	color      Color
	status     Status
	totalPrice *int64
	memo       *string
	createdBy  uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

type Draft struct {
	CustomerID uuid.UUID
	ServiceIDs []uuid.UUID
	StartTime  time.Time
	Color      string
	Memo       *string
	CreatedBy  uuid.UUID
}

func NewBooking(calc *Calculator, services []*catalog.Service, d Draft, now time.Time) (*Booking, error) {
	if d.CustomerID == uuid.Nil {
		return nil, ErrCustomerRequired
	}
	if d.CreatedBy == uuid.Nil {
		return nil, ErrCreatorRequired
	}
	if d.StartTime.IsZero() {
		return nil, ErrStartRequired
	}
	color, err := NewColor(d.Color)
	if err != nil {
		return nil, err
	}
	memo, err := normalizeMemo(d.Memo)
	if err != nil {
		return nil, err
	}
	if err := validateSelection(d.ServiceIDs, services); err != nil {
		return nil, err
	}

	b := &Booking{
		id:         uuid.New(),
		customerID: d.CustomerID,
		color:      color,
		status:     StatusScheduled,
		memo:       memo,
		createdBy:  d.CreatedBy,
		createdAt:  now,
		updatedAt:  now,
	}
	b.reprice(calc, services, d.ServiceIDs, d.StartTime)
	return b, nil
}

func Reconstruct(
	id, customerID uuid.UUID,
	serviceIDs []uuid.UUID,
	startTime, endTime time.Time,
	color Color,
	status Status,
	totalPrice *int64,
	memo *string,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		customerID: customerID,
		serviceIDs: serviceIDs,
		startTime:  startTime,
		endTime:    endTime,
		color:      color,
		status:     status,
		totalPrice: totalPrice,
		memo:       memo,
		createdBy:  createdBy,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Changes is a partial update; nil fields are left untouched.
type Changes struct {
	CustomerID *uuid.UUID
	ServiceIDs []uuid.UUID
	StartTime  *time.Time
	Color      *string
	Status     *string
	Memo       *string
}

func (c Changes) Reprices() bool {
	return c.ServiceIDs != nil || c.StartTime != nil
}

// Apply validates every change before mutating anything. Status is free to
// move in any direction.
func (b *Booking) Apply(calc *Calculator, services []*catalog.Service, ch Changes, now time.Time) error {
	customerID := b.customerID
	if ch.CustomerID != nil {
		if *ch.CustomerID == uuid.Nil {
			return ErrCustomerRequired
		}
		customerID = *ch.CustomerID
	}
	color := b.color
	if ch.Color != nil {
		c, err := NewColor(*ch.Color)
		if err != nil {
			return err
		}
		color = c
	}
	status := b.status
	if ch.Status != nil {
		s, err := NewStatus(*ch.Status)
		if err != nil {
			return err
		}
		status = s
	}
	memo := b.memo
	if ch.Memo != nil {
		m, err := normalizeMemo(ch.Memo)
		if err != nil {
			return err
		}
		memo = m
	}
	serviceIDs := b.serviceIDs
	if ch.ServiceIDs != nil {
		if err := validateSelection(ch.ServiceIDs, services); err != nil {
			return err
		}
		serviceIDs = ch.ServiceIDs
	}
	start := b.startTime
	if ch.StartTime != nil {
		if ch.StartTime.IsZero() {
			return ErrStartRequired
		}
		start = *ch.StartTime
	}

	b.customerID = customerID
	b.color = color
	b.status = status
	b.memo = memo
	if ch.Reprices() {
		b.reprice(calc, services, serviceIDs, start)
	}
	b.updatedAt = now
	return nil
}

func (b *Booking) reprice(calc *Calculator, services []*catalog.Service, serviceIDs []uuid.UUID, start time.Time) {
	q := calc.Quote(serviceIDs, services, start)
	price := q.TotalPrice
	b.serviceIDs = append([]uuid.UUID(nil), serviceIDs...)
	b.startTime = start
	b.endTime = q.EndTime
	b.totalPrice = &price
}

func validateSelection(ids []uuid.UUID, services []*catalog.Service) error {
	if len(ids) == 0 {
		return ErrNoServices
	}
	idx := catalog.Index(services)
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := idx[id]; !ok {
			return ErrUnknownService
		}
		if _, dup := seen[id]; dup {
			return ErrDuplicatedService
		}
		seen[id] = struct{}{}
	}
	return nil
}

func normalizeMemo(m *string) (*string, error) {
	if m == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*m)
	if v == "" {
		return nil, nil
	}
	if len([]rune(v)) > MaxMemoLength {
		return nil, ErrMemoTooLong
	}
	return &v, nil
}

// Blocks reports whether the booking holds its time interval. Cancelled
// bookings free their slots.
func (b *Booking) Blocks() bool {
	return b.status != StatusCancelled
}

func (b *Booking) Interval() (time.Time, time.Time) {
	return b.startTime, b.endTime
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) CustomerID() uuid.UUID   { return b.customerID }
func (b *Booking) ServiceIDs() []uuid.UUID { return b.serviceIDs }
func (b *Booking) StartTime() time.Time    { return b.startTime }
func (b *Booking) EndTime() time.Time      { return b.endTime }
func (b *Booking) Color() Color            { return b.color }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) TotalPrice() *int64      { return b.totalPrice }
func (b *Booking) Memo() *string           { return b.memo }
func (b *Booking) CreatedBy() uuid.UUID    { return b.createdBy }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
