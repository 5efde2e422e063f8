package repository

import (
	"context"
	"log/slog"
	"time"

	"grooming-salon/internal/domain/user"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, name, password_hash, role, created_at, updated_at`

type UserRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewUserRepository(dbtx db.DBTX, logger *slog.Logger) *UserRepository {
	return &UserRepository{db: dbtx, logger: logger}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find user", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email.Value()))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Email().Value(), u.Name(), u.PasswordHash(), u.Role().String(), u.CreatedAt(), u.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET name = $2, password_hash = $3, role = $4, updated_at = $5 WHERE id = $1`,
		u.ID(), u.Name(), u.PasswordHash(), u.Role().String(), u.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("user not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("user not found")
	}
	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                   uuid.UUID
		email, name, hash    string
		role                 string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &email, &name, &hash, &role, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(id, e, name, hash, user.Role(role), createdAt, updatedAt), nil
}
