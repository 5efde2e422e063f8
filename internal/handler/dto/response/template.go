package response

import (
	"time"

	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

type TemplateResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTemplateView(v *queries.TemplateView) TemplateResponse {
	return copyFrom[TemplateResponse](v)
}

func FromTemplateViews(vs []queries.TemplateView) []TemplateResponse {
	return copyAll[TemplateResponse](vs)
}
