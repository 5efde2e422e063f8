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

type TemplateReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewTemplateReadStore(dbtx db.DBTX, logger *slog.Logger) *TemplateReadStore {
	return &TemplateReadStore{db: dbtx, logger: logger}
}

func templateSelect() squirrel.SelectBuilder {
	return psql.Select("id", "name", "template", "created_at", "updated_at").From("notification_templates")
}

func (s *TemplateReadStore) List(ctx context.Context) ([]queries.TemplateView, error) {
	query, args, err := templateSelect().OrderBy("name").ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build template list query", err)
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to list templates", err)
	}
	defer rows.Close()

	out := make([]queries.TemplateView, 0)
	for rows.Next() {
		v, err := scanTemplateView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, "failed to scan template", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to iterate templates", err)
	}
	return out, nil
}

func (s *TemplateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TemplateView, error) {
	query, args, err := templateSelect().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build template query", err)
	}
	v, err := scanTemplateView(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to find template", err)
	}
	return v, nil
}

func scanTemplateView(row pgx.Row) (*queries.TemplateView, error) {
	var v queries.TemplateView
	if err := row.Scan(&v.ID, &v.Name, &v.Template, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
