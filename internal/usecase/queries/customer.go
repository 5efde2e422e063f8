package queries

import (
	"context"
	"strings"
	"time"

	"grooming-salon/internal/infra"
	"grooming-salon/internal/pkg/errs"

	"github.com/google/uuid"
)

const SearchLimit = 10

var (
	ErrCustomerNotFound = errs.Mark(errs.New("customer not found"), errs.ErrNotFound)
	ErrInvalidCursor    = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
)

type CustomerReadStore interface {
	FirstPage(ctx context.Context, limit int) ([]CustomerView, error)
	// After returns customers created before the (createdAt, id) boundary, newest first.
	After(ctx context.Context, createdAt time.Time, id uuid.UUID, limit int) ([]CustomerView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	Search(ctx context.Context, term string, limit int) ([]CustomerView, error)
}

type CustomerQueries interface {
	List(ctx context.Context, cursor *Cursor, limit int) ([]CustomerView, *Cursor, error)
	Get(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	Search(ctx context.Context, term string) ([]CustomerView, error)
}

type customerQueriesImpl struct {
	store CustomerReadStore
}

func NewCustomerQueries(store CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{store: store}
}

func (q *customerQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]CustomerView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []CustomerView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FirstPage(ctx, limit+1)
	} else {
		createdAt, id, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.After(ctx, createdAt, id, limit+1)
	}
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to list customers")
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *customerQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Wrap(err, "failed to get customer")
	}
	return v, nil
}

// Search matches guardian or pet names; a blank term yields no rows.
func (q *customerQueriesImpl) Search(ctx context.Context, term string) ([]CustomerView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []CustomerView{}, nil
	}
	rows, err := q.store.Search(ctx, term, SearchLimit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search customers")
	}
	return rows, nil
}
