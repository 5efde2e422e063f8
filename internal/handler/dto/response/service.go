package response

import (
	"time"

	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	DurationHours float64   `json:"duration_hours"`
	Price         *int64    `json:"price"`
	Tag           string    `json:"tag,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromServiceView(v *queries.ServiceView) ServiceResponse {
	return copyFrom[ServiceResponse](v)
}

func FromServiceViews(vs []queries.ServiceView) []ServiceResponse {
	return copyAll[ServiceResponse](vs)
}
