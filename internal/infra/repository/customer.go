package repository

import (
	"context"
	"log/slog"
	"time"

	"grooming-salon/internal/domain/customer"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/infra/db"
	"grooming-salon/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCustomerRepository(dbtx db.DBTX, logger *slog.Logger) *CustomerRepository {
	return &CustomerRepository{db: dbtx, logger: logger}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	var (
		cid                  uuid.UUID
		guardian, pet        string
		species, memo, phone pgtype.Text
		weight               pgtype.Float8
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `SELECT id, guardian_name, pet_name, species, weight, memo, phone, created_at, updated_at
		FROM customers WHERE id = $1`, id).
		Scan(&cid, &guardian, &pet, &species, &weight, &memo, &phone, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find customer", err)
	}

	return customer.Reconstruct(cid, customer.Profile{
		GuardianName: guardian,
		PetName:      pet,
		Species:      pgconv.StringPtrFromPgtype(species),
		Weight:       pgconv.Float64PtrFromPgtype(weight),
		Memo:         pgconv.StringPtrFromPgtype(memo),
		Phone:        pgconv.StringPtrFromPgtype(phone),
	}, createdAt, updatedAt), nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx, `INSERT INTO customers
		(id, guardian_name, pet_name, species, weight, memo, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID(), c.GuardianName(), c.PetName(),
		pgconv.StringPtrToPgtype(c.Species()), pgconv.Float64PtrToPgtype(c.Weight()),
		pgconv.StringPtrToPgtype(c.Memo()), pgconv.StringPtrToPgtype(c.Phone()),
		c.CreatedAt(), c.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Exec(ctx, `UPDATE customers SET
			guardian_name = $2, pet_name = $3, species = $4, weight = $5, memo = $6, phone = $7, updated_at = $8
		WHERE id = $1`,
		c.ID(), c.GuardianName(), c.PetName(),
		pgconv.StringPtrToPgtype(c.Species()), pgconv.Float64PtrToPgtype(c.Weight()),
		pgconv.StringPtrToPgtype(c.Memo()), pgconv.StringPtrToPgtype(c.Phone()),
		c.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("customer not found")
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("customer not found")
	}
	return nil
}
