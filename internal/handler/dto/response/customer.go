package response

import (
	"time"

	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID           uuid.UUID `json:"id"`
	GuardianName string    `json:"guardian_name"`
	PetName      string    `json:"pet_name"`
	Species      *string   `json:"species"`
	Weight       *float64  `json:"weight"`
	Memo         *string   `json:"memo"`
	Phone        *string   `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CustomerListResponse struct {
	Data []CustomerResponse `json:"data"`
	Next *queries.Cursor    `json:"next,omitempty"`
}

func FromCustomerView(v *queries.CustomerView) CustomerResponse {
	return copyFrom[CustomerResponse](v)
}

func FromCustomerViews(vs []queries.CustomerView) []CustomerResponse {
	return copyAll[CustomerResponse](vs)
}

func NewCustomerListResponse(vs []queries.CustomerView, next *queries.Cursor) CustomerListResponse {
	return CustomerListResponse{Data: FromCustomerViews(vs), Next: next}
}
