//go:build unit

package auth_test

import (
	"testing"

	"grooming-salon/internal/domain/auth"
	"grooming-salon/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		errIs    error
	}{
		{name: "valid", email: "Admin@Salon.kr", password: "password123"},
		{name: "invalid email", email: "admin", password: "password123", errIs: user.ErrInvalidEmail},
		{name: "empty password", email: "admin@salon.kr", password: "", errIs: auth.ErrMissingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := auth.NewCredentials(tt.email, tt.password)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin@salon.kr", c.Email().Value())
			assert.Equal(t, tt.password, c.Password())
		})
	}
}
