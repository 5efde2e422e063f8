package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"grooming-salon/internal/domain/user"
	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidSession = errs.Mark(errs.New("invalid or expired session"), errs.ErrUnauthenticated)

// TokenValidator resolves an access token to the acting user and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

// ValidateToken rejects tokens carrying a role this salon does not know.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(ErrInvalidSession, err.Error())
	}

	role, err := user.NewRole(claims.Role)
	if err != nil || claims.UserID == uuid.Nil {
		return uuid.Nil, "", ErrInvalidSession
	}
	return claims.UserID, role, nil
}
