package readstore

import (
	"context"
	"log/slog"
	"time"

	"grooming-salon/internal/infra"
	"grooming-salon/internal/infra/db"
	"grooming-salon/internal/pkg/pgconv"
	"grooming-salon/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCustomerReadStore(dbtx db.DBTX, logger *slog.Logger) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx, logger: logger}
}

func customerSelect() squirrel.SelectBuilder {
	return psql.
		Select("id", "guardian_name", "pet_name", "species", "weight", "memo", "phone", "created_at", "updated_at").
		From("customers").
		OrderBy("created_at DESC", "id DESC")
}

func customerAfterQuery(createdAt time.Time, id uuid.UUID, limit int) squirrel.SelectBuilder {
	return customerSelect().
		Where(squirrel.Expr("(created_at, id) < (?, ?)", createdAt, id)).
		Limit(uint64(limit))
}

func customerSearchQuery(term string, limit int) squirrel.SelectBuilder {
	pattern := containsPattern(term)
	return customerSelect().
		Where(squirrel.Or{
			squirrel.ILike{"guardian_name": pattern},
			squirrel.ILike{"pet_name": pattern},
		}).
		Limit(uint64(limit))
}

func (s *CustomerReadStore) FirstPage(ctx context.Context, limit int) ([]queries.CustomerView, error) {
	return s.list(ctx, customerSelect().Limit(uint64(limit)))
}

func (s *CustomerReadStore) After(ctx context.Context, createdAt time.Time, id uuid.UUID, limit int) ([]queries.CustomerView, error) {
	return s.list(ctx, customerAfterQuery(createdAt, id, limit))
}

func (s *CustomerReadStore) Search(ctx context.Context, term string, limit int) ([]queries.CustomerView, error) {
	return s.list(ctx, customerSearchQuery(term, limit))
}

func (s *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	query, args, err := customerSelect().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build customer query", err)
	}
	v, err := scanCustomerView(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to find customer", err)
	}
	return v, nil
}

func (s *CustomerReadStore) list(ctx context.Context, b squirrel.SelectBuilder) ([]queries.CustomerView, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build customer list query", err)
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to list customers", err)
	}
	defer rows.Close()

	out := make([]queries.CustomerView, 0)
	for rows.Next() {
		v, err := scanCustomerView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, "failed to scan customer", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to iterate customers", err)
	}
	return out, nil
}

func scanCustomerView(row pgx.Row) (*queries.CustomerView, error) {
	var (
		v                    queries.CustomerView
		species, memo, phone pgtype.Text
		weight               pgtype.Float8
	)
	err := row.Scan(&v.ID, &v.GuardianName, &v.PetName, &species, &weight, &memo, &phone, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.Species = pgconv.StringPtrFromPgtype(species)
	v.Weight = pgconv.Float64PtrFromPgtype(weight)
	v.Memo = pgconv.StringPtrFromPgtype(memo)
	v.Phone = pgconv.StringPtrFromPgtype(phone)
	return &v, nil
}
