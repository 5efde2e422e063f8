package response

import (
	"time"

	"grooming-salon/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func NewLoginResponse(token string, expiresAt time.Time, u *queries.UserView) LoginResponse {
	return LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        FromUserView(u),
	}
}
