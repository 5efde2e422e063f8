package repository

import (
	"context"
	"log/slog"
	"time"

	"grooming-salon/internal/domain/notification"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const templateColumns = `id, name, template, created_at, updated_at`

type TemplateRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewTemplateRepository(dbtx db.DBTX, logger *slog.Logger) *TemplateRepository {
	return &TemplateRepository{db: dbtx, logger: logger}
}

func (r *TemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Template, error) {
	t, err := scanTemplate(r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM notification_templates WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find template", err)
	}
	return t, nil
}

func (r *TemplateRepository) FindByName(ctx context.Context, name string) (*notification.Template, error) {
	t, err := scanTemplate(r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM notification_templates WHERE name = $1`, name))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find template by name", err)
	}
	return t, nil
}

func (r *TemplateRepository) Create(ctx context.Context, t *notification.Template) error {
	_, err := r.db.Exec(ctx, `INSERT INTO notification_templates (`+templateColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		t.ID(), t.Name(), t.Body(), t.CreatedAt(), t.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create template", err)
	}
	return nil
}

func (r *TemplateRepository) Update(ctx context.Context, t *notification.Template) error {
	tag, err := r.db.Exec(ctx, `UPDATE notification_templates SET name = $2, template = $3, updated_at = $4 WHERE id = $1`,
		t.ID(), t.Name(), t.Body(), t.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to update template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("template not found")
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notification_templates WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to delete template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("template not found")
	}
	return nil
}

func scanTemplate(row pgx.Row) (*notification.Template, error) {
	var (
		id                   uuid.UUID
		name, body           string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &body, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return notification.Reconstruct(id, name, body, createdAt, updatedAt), nil
}
