package readstore

import (
	"context"
	"log/slog"

	"grooming-salon/internal/infra"
	"grooming-salon/internal/infra/db"
	"grooming-salon/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewUserReadStore(dbtx db.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{db: dbtx, logger: logger}
}

// userSelect never exposes password_hash.
func userSelect() squirrel.SelectBuilder {
	return psql.Select("id", "email", "name", "role", "created_at").From("users")
}

func (s *UserReadStore) List(ctx context.Context) ([]queries.UserView, error) {
	query, args, err := userSelect().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build user list query", err)
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to list users", err)
	}
	defer rows.Close()

	out := make([]queries.UserView, 0)
	for rows.Next() {
		v, err := scanUserView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, "failed to scan user", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to iterate users", err)
	}
	return out, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	query, args, err := userSelect().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build user query", err)
	}
	v, err := scanUserView(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to find user", err)
	}
	return v, nil
}

func scanUserView(row pgx.Row) (*queries.UserView, error) {
	var v queries.UserView
	if err := row.Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
