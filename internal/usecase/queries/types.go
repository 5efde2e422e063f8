package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock
//go:generate mockgen -source=customer.go -destination=../../../tests/mock/queries/customer.go -package=queriesmock
//go:generate mockgen -source=revenue.go -destination=../../../tests/mock/queries/revenue.go -package=queriesmock
//go:generate mockgen -source=service.go -destination=../../../tests/mock/queries/service.go -package=queriesmock
//go:generate mockgen -source=template.go -destination=../../../tests/mock/queries/template.go -package=queriesmock
//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"time"

	"grooming-salon/internal/domain/catalog"

	"github.com/google/uuid"
)

type ServiceView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	DurationHours float64   `json:"duration_hours"`
	Price         *int64    `json:"price,omitempty"`
	Tag           string    `json:"tag,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Domain rebuilds the catalog entry the calculator works on.
func (v ServiceView) Domain() *catalog.Service {
	return catalog.ReconstructService(v.ID, v.Name, v.DurationHours, v.Price, catalog.Tag(v.Tag), v.CreatedAt)
}

type CustomerView struct {
	ID           uuid.UUID `json:"id"`
	GuardianName string    `json:"guardian_name"`
	PetName      string    `json:"pet_name"`
	Species      *string   `json:"species,omitempty"`
	Weight       *float64  `json:"weight,omitempty"`
	Memo         *string   `json:"memo,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CustomerSummary is the customer part joined onto a booking row.
type CustomerSummary struct {
	ID           uuid.UUID `json:"id"`
	GuardianName string    `json:"guardian_name"`
	PetName      string    `json:"pet_name"`
	Phone        *string   `json:"phone,omitempty"`
}

type BookingView struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	ServiceIDs []uuid.UUID     `json:"service_ids"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    time.Time       `json:"end_time"`
	Status     string          `json:"status"`
	TotalPrice *int64          `json:"total_price,omitempty"`
	Memo       *string         `json:"memo,omitempty"`
	Color      string          `json:"color"`
	CreatedBy  *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Customer   CustomerSummary `json:"customer"`

	// Services is resolved from the catalog, in selection order.
	Services []ServiceView `json:"services"`
}

func (v *BookingView) Interval() (time.Time, time.Time) {
	return v.StartTime, v.EndTime
}

// ServiceNames lists the resolved service names in selection order.
func (v *BookingView) ServiceNames() []string {
	names := make([]string, 0, len(v.Services))
	for _, s := range v.Services {
		names = append(names, s.Name)
	}
	return names
}

type TemplateView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
