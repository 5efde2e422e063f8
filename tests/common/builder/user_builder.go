//go:build unit || e2e

package builder

import (
	"time"

	"grooming-salon/internal/domain/user"
	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

// FixedNow is the creation time every builder stamps onto its entities.
var FixedNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "groomer@example.com",
		Name:         "김미용",
		PasswordHash: "hashed_password",
		Role:         "groomer",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.Reconstruct(u.ID, email, u.Name, u.PasswordHash, role, FixedNow, FixedNow), nil
}

func (u *UserBuilder) BuildView() queries.UserView {
	return queries.UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: FixedNow,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}
