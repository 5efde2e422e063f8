//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customers(n int) []queries.CustomerView {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]queries.CustomerView, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, queries.CustomerView{
			ID:        uuid.New(),
			PetName:   "pet",
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return out
}

func TestCustomerQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("pages with a keyset cursor", func(t *testing.T) {
		store := &fakeCustomerStore{rows: customers(5)}
		q := queries.NewCustomerQueries(store)

		page, next, err := q.List(ctx, nil, 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)
		assert.Equal(t, 3, store.lastLimit, "one extra row detects the next page")
		require.NotNil(t, next)

		page2, next2, err := q.List(ctx, next, 2)
		require.NoError(t, err)
		assert.Equal(t, store.rows[1].ID, store.afterID)
		assert.Equal(t, []uuid.UUID{store.rows[2].ID, store.rows[3].ID}, []uuid.UUID{page2[0].ID, page2[1].ID})
		require.NotNil(t, next2)

		page3, next3, err := q.List(ctx, next2, 2)
		require.NoError(t, err)
		assert.Len(t, page3, 1)
		assert.Nil(t, next3)
	})

	t.Run("limit falls back to the default", func(t *testing.T) {
		store := &fakeCustomerStore{}
		_, _, err := queries.NewCustomerQueries(store).List(ctx, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, queries.DefaultListLimit+1, store.lastLimit)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		_, _, err := queries.NewCustomerQueries(&fakeCustomerStore{}).List(ctx, &queries.Cursor{After: "%%%"}, 10)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestCustomerQueries_Search(t *testing.T) {
	ctx := context.Background()
	store := &fakeCustomerStore{rows: customers(12)}
	q := queries.NewCustomerQueries(store)

	rows, err := q.Search(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = q.Search(ctx, "초코")
	require.NoError(t, err)
	assert.Len(t, rows, queries.SearchLimit)

	_, err = q.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, queries.ErrCustomerNotFound)
}
