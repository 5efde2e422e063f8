package request

import (
	"time"

	"grooming-salon/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerID uuid.UUID   `json:"customer_id" binding:"required"`
	ServiceIDs []uuid.UUID `json:"service_ids" binding:"required,min=1"`
	StartTime  time.Time   `json:"start_time" binding:"required"`
	Color      string      `json:"color" binding:"omitempty,hexcolor"`
	Memo       *string     `json:"memo" binding:"omitempty,max=1000"`
}

func (r *CreateBookingRequest) ToDomain(createdBy uuid.UUID) booking.Draft {
	return booking.Draft{
		CustomerID: r.CustomerID,
		ServiceIDs: r.ServiceIDs,
		StartTime:  r.StartTime,
		Color:      r.Color,
		Memo:       r.Memo,
		CreatedBy:  createdBy,
	}
}

// UpdateBookingRequest is a partial update; omitted fields are kept.
type UpdateBookingRequest struct {
	CustomerID *uuid.UUID  `json:"customer_id"`
	ServiceIDs []uuid.UUID `json:"service_ids" binding:"omitempty,min=1"`
	StartTime  *time.Time  `json:"start_time"`
	Color      *string     `json:"color" binding:"omitempty,hexcolor"`
	Status     *string     `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	Memo       *string     `json:"memo" binding:"omitempty,max=1000"`
}

func (r *UpdateBookingRequest) ToDomain() booking.Changes {
	return booking.Changes{
		CustomerID: r.CustomerID,
		ServiceIDs: r.ServiceIDs,
		StartTime:  r.StartTime,
		Color:      r.Color,
		Status:     r.Status,
		Memo:       r.Memo,
	}
}

type QuoteRequest struct {
	ServiceIDs []uuid.UUID `json:"service_ids" binding:"required"`
	StartTime  time.Time   `json:"start_time" binding:"required"`
}

type RangeQuery struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type MonthQuery struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

type DayQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}
