package response

import (
	"time"

	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserView(v *queries.UserView) UserResponse {
	return copyFrom[UserResponse](v)
}

func FromUserViews(vs []queries.UserView) []UserResponse {
	return copyAll[UserResponse](vs)
}
