package commands

import (
	"context"
	"time"

	"grooming-salon/internal/domain/user"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/pkg/password"
	"grooming-salon/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{uow: uow, tokens: tokens}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	var u *user.User
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, ferr := tx.Users().FindByEmail(ctx, credentials.Email())
		if ferr != nil {
			return ferr
		}
		u = found
		return nil
	})
	if err != nil {
		// same answer as a wrong password so accounts cannot be enumerated
		return nil, repoErr(err, ErrInvalidCredentials, nil, "failed to load user")
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      u.ID(),
		Role:        u.Role(),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
