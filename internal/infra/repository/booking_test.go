//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/infra/repository"
	"grooming-salon/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: booking created"},
		{
			name:       "error: database error occurs",
			execErr:    errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: unknown customer",
			execErr:    &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := &mockDBTX{}
			repo := repository.NewBookingRepository(db, nil)

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			db.On("Exec", ctx, mock.MatchedBy(func(sql string) bool { return len(sql) > 0 }), mock.Anything).
				Return(tag("INSERT 0 1"), tc.execErr)

			actualError := repo.Create(ctx, b)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		commandTag string
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: booking updated", commandTag: "UPDATE 1"},
		{name: "error: booking vanished", commandTag: "UPDATE 0", expectKind: infra.KindNotFound},
		{name: "error: database error occurs", commandTag: "", execErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := &mockDBTX{}
			repo := repository.NewBookingRepository(db, nil)

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			db.On("Exec", ctx, mock.Anything, mock.Anything).Return(tag(tc.commandTag), tc.execErr)

			actualError := repo.Update(ctx, b)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	customerID := uuid.New()
	serviceIDs := []uuid.UUID{uuid.New(), uuid.New()}
	start := time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	created := start.Add(-24 * time.Hour)

	t.Run("success: row is reconstructed", func(t *testing.T) {
		db := &mockDBTX{}
		repo := repository.NewBookingRepository(db, nil)

		row := fakeRow{values: []any{
			id, customerID, serviceIDs, start, end, "scheduled",
			pgtype.Int8{Int64: 55000, Valid: true}, pgtype.Text{}, "#3B82F6",
			pgtype.UUID{}, created, created,
		}}
		db.On("QueryRow", ctx, mock.Anything, []any{id}).Return(row)

		b, err := repo.FindByID(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, id, b.ID())
		assert.Equal(t, serviceIDs, b.ServiceIDs())
		assert.Equal(t, booking.StatusScheduled, b.Status())
		assert.Equal(t, booking.Color("#3B82F6"), b.Color())
		require.NotNil(t, b.TotalPrice())
		assert.Equal(t, int64(55000), *b.TotalPrice())
		assert.Nil(t, b.Memo())
		assert.Equal(t, uuid.Nil, b.CreatedBy())
	})

	t.Run("error: not found", func(t *testing.T) {
		db := &mockDBTX{}
		repo := repository.NewBookingRepository(db, nil)
		db.On("QueryRow", ctx, mock.Anything, []any{id}).Return(fakeRow{err: pgx.ErrNoRows})

		b, err := repo.FindByID(ctx, id)
		assert.Nil(t, b)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository_LockSchedule(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}
	repo := repository.NewBookingRepository(db, nil)

	db.On("Exec", ctx, "SELECT pg_advisory_xact_lock($1)", mock.Anything).Return(tag("SELECT 1"), nil)

	require.NoError(t, repo.LockSchedule(ctx))
	db.AssertExpectations(t)
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	db := &mockDBTX{}
	repo := repository.NewBookingRepository(db, nil)
	db.On("Exec", ctx, mock.Anything, []any{id}).Return(tag("DELETE 0"), nil)

	err := repo.Delete(ctx, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
