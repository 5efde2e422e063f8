package queries

import (
	"context"

	"grooming-salon/internal/infra"
	"grooming-salon/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)

type UserReadStore interface {
	List(ctx context.Context) ([]UserView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type UserQueries interface {
	List(ctx context.Context) ([]UserView, error)
	Get(ctx context.Context, id uuid.UUID) (*UserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]UserView, error) {
	rows, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return rows, nil
}

func (q *userQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*UserView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to get user")
	}
	return v, nil
}

// GetCurrentUser resolves the authenticated caller. A token for a deleted
// account reads as unauthenticated rather than not found.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	v, err := q.Get(ctx, userID)
	if errs.Is(err, ErrUserNotFound) {
		return nil, errs.Mark(errs.Wrap(err, "current user"), errs.ErrUnauthenticated)
	}
	return v, err
}
