package repository

import (
	"context"
	"log/slog"
	"time"

	"grooming-salon/internal/domain/catalog"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/infra/db"
	"grooming-salon/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const serviceColumns = `id, name, duration_hours, price, tag, created_at`

type ServiceRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewServiceRepository(dbtx db.DBTX, logger *slog.Logger) *ServiceRepository {
	return &ServiceRepository{db: dbtx, logger: logger}
}

func (r *ServiceRepository) FindAll(ctx context.Context) ([]*catalog.Service, error) {
	rows, err := r.db.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list services", err)
	}
	defer rows.Close()

	var out []*catalog.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, "failed to scan service", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to iterate services", err)
	}
	return out, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	s, err := scanService(r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find service", err)
	}
	return s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	_, err := r.db.Exec(ctx, `INSERT INTO services (`+serviceColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID(), s.Name(), s.DurationHours(), pgconv.Int64PtrToPgtype(s.Price()), tagToPgtype(s.Tag()), s.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	tag, err := r.db.Exec(ctx, `UPDATE services SET name = $2, duration_hours = $3, price = $4, tag = $5 WHERE id = $1`,
		s.ID(), s.Name(), s.DurationHours(), pgconv.Int64PtrToPgtype(s.Price()), tagToPgtype(s.Tag()))
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("service not found")
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("service not found")
	}
	return nil
}

func scanService(row pgx.Row) (*catalog.Service, error) {
	var (
		id        uuid.UUID
		name      string
		hours     float64
		price     pgtype.Int8
		tag       pgtype.Text
		createdAt time.Time
	)
	if err := row.Scan(&id, &name, &hours, &price, &tag, &createdAt); err != nil {
		return nil, err
	}
	return catalog.ReconstructService(id, name, hours, pgconv.Int64PtrFromPgtype(price), catalog.Tag(tag.String), createdAt), nil
}

// tagToPgtype stores TagNone as NULL.
func tagToPgtype(t catalog.Tag) pgtype.Text {
	if t == catalog.TagNone {
		return pgtype.Text{}
	}
	return pgtype.Text{String: t.String(), Valid: true}
}
