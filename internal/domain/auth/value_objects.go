package auth

import (
	"errors"

	"grooming-salon/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingPassword    = errors.New("password is required")
)

// Credentials is a login attempt. The password stays plain text until it is
// compared against the stored hash.
type Credentials struct {
	email    user.Email
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if passwordStr == "" {
		return Credentials{}, ErrMissingPassword
	}
	return Credentials{email: email, password: passwordStr}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
