package commands

import (
	"context"

	"grooming-salon/internal/domain/user"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/pkg/password"
	"grooming-salon/internal/pkg/patch"
	"grooming-salon/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) error
	ResetPassword(ctx context.Context, id uuid.UUID, req reqdto.ResetPasswordRequest) error
	Delete(ctx context.Context, id, actorID uuid.UUID) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (u *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return uuid.Nil, err
	}
	account, err := user.NewUser(email, req.Name, hash, role, u.clock.Now())
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, account); err != nil {
			return repoErr(err, nil, ErrEmailTaken, "failed to create user")
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return account.ID(), nil
}

func (u *userCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return repoErr(err, ErrUserNotFound, nil, "failed to load user")
		}
		role, err := user.NewRole(patch.Coalesce(req.Role, account.Role().String()))
		if err != nil {
			return invalid(err)
		}
		if err := account.UpdateProfile(patch.Coalesce(req.Name, account.Name()), role, u.clock.Now()); err != nil {
			return invalid(err)
		}
		if err := tx.Users().Update(ctx, account); err != nil {
			return repoErr(err, ErrUserNotFound, nil, "failed to update user")
		}
		return nil
	})
}

func (u *userCommandsImpl) ResetPassword(ctx context.Context, id uuid.UUID, req reqdto.ResetPasswordRequest) error {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return repoErr(err, ErrUserNotFound, nil, "failed to load user")
		}
		account.ChangePasswordHash(hash, u.clock.Now())
		if err := tx.Users().Update(ctx, account); err != nil {
			return repoErr(err, ErrUserNotFound, nil, "failed to update password")
		}
		return nil
	})
}

func (u *userCommandsImpl) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	if id == actorID {
		return ErrCannotDeleteSelf
	}
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, id); err != nil {
			return repoErr(err, ErrUserNotFound, nil, "failed to delete user")
		}
		return nil
	})
}

func hashPassword(plain string) (string, error) {
	if err := password.Validate(plain); err != nil {
		return "", invalid(err)
	}
	hash, err := password.HashPassword(plain)
	if err != nil {
		return "", errs.Wrap(err, "failed to hash password")
	}
	return hash, nil
}
