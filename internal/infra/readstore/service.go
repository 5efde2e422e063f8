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

type ServiceReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewServiceReadStore(dbtx db.DBTX, logger *slog.Logger) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx, logger: logger}
}

func serviceSelect() squirrel.SelectBuilder {
	return psql.Select("id", "name", "duration_hours", "price", "tag", "created_at").From("services")
}

func (s *ServiceReadStore) List(ctx context.Context) ([]queries.ServiceView, error) {
	query, args, err := serviceSelect().OrderBy("name").ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build service list query", err)
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to list services", err)
	}
	defer rows.Close()

	out := make([]queries.ServiceView, 0)
	for rows.Next() {
		v, err := scanServiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, "failed to scan service", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to iterate services", err)
	}
	return out, nil
}

func (s *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	query, args, err := serviceSelect().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build service query", err)
	}
	v, err := scanServiceView(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to find service", err)
	}
	return v, nil
}

func scanServiceView(row pgx.Row) (*queries.ServiceView, error) {
	var (
		v         queries.ServiceView
		price     pgtype.Int8
		tag       pgtype.Text
		createdAt time.Time
	)
	if err := row.Scan(&v.ID, &v.Name, &v.DurationHours, &price, &tag, &createdAt); err != nil {
		return nil, err
	}
	v.Price = pgconv.Int64PtrFromPgtype(price)
	v.Tag = tag.String
	v.CreatedAt = createdAt
	return &v, nil
}
