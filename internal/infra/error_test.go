//go:build unit

package infra_test

import (
	"fmt"
	"testing"

	"grooming-salon/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: assert.AnError, want: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr(nil, "op failed", tt.err)

			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}

func TestNewNotFound(t *testing.T) {
	err := infra.NewNotFound("booking not found")

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsKind(assert.AnError, infra.KindNotFound))
}
