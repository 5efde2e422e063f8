//go:build unit || e2e

package builder

import (
	"time"

	"grooming-salon/internal/domain/booking"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	ServiceIDs []uuid.UUID
	StartTime  time.Time
	Hours      float64
	Status     string
	TotalPrice *int64
	Memo       *string
	Color      string
	CreatedBy  uuid.UUID
	Customer   queries.CustomerSummary
	Services   []queries.ServiceView
}

// NewBookingBuilder starts a two hour booking at 10:00 Seoul time on 2024-01-02.
func NewBookingBuilder() *BookingBuilder {
	price := int64(50000)
	customerID := uuid.New()
	return &BookingBuilder{
		ID:         uuid.New(),
		CustomerID: customerID,
		ServiceIDs: []uuid.UUID{uuid.New()},
		StartTime:  time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC),
		Hours:      2,
		Status:     "scheduled",
		TotalPrice: &price,
		Color:      "#8B5CF6",
		CreatedBy:  uuid.New(),
		Customer: queries.CustomerSummary{
			ID:           customerID,
			GuardianName: "이보호",
			PetName:      "초코",
		},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStart(start time.Time, hours float64) *BookingBuilder {
	b.StartTime = start
	b.Hours = hours
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

// WithServices selects the given catalog entries and reprices the booking.
func (b *BookingBuilder) WithServices(services ...queries.ServiceView) *BookingBuilder {
	b.ServiceIDs = make([]uuid.UUID, 0, len(services))
	b.Services = services
	var total int64
	for _, s := range services {
		b.ServiceIDs = append(b.ServiceIDs, s.ID)
		if s.Price != nil {
			total += *s.Price
		}
	}
	b.TotalPrice = &total
	return b
}

func (b *BookingBuilder) WithCustomer(c queries.CustomerSummary) *BookingBuilder {
	b.CustomerID = c.ID
	b.Customer = c
	return b
}

func (b *BookingBuilder) WithMemo(memo string) *BookingBuilder {
	b.Memo = &memo
	return b
}

func (b *BookingBuilder) EndTime() time.Time {
	return booking.EndTime(b.StartTime, b.Hours)
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	color, err := booking.NewColor(b.Color)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		b.ID, b.CustomerID, b.ServiceIDs, b.StartTime, b.EndTime(),
		color, status, b.TotalPrice, b.Memo, b.CreatedBy, FixedNow, FixedNow,
	), nil
}

func (b *BookingBuilder) BuildView() queries.BookingView {
	createdBy := b.CreatedBy
	return queries.BookingView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		ServiceIDs: b.ServiceIDs,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime(),
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
		Memo:       b.Memo,
		Color:      b.Color,
		CreatedBy:  &createdBy,
		CreatedAt:  FixedNow,
		UpdatedAt:  FixedNow,
		Customer:   b.Customer,
		Services:   b.Services,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CustomerID: b.CustomerID,
		ServiceIDs: b.ServiceIDs,
		StartTime:  b.StartTime,
		Color:      b.Color,
		Memo:       b.Memo,
	}
}
