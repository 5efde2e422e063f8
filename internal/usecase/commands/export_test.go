//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memArchive struct {
	enabled bool
	objects map[string][]byte
}

func (m *memArchive) Enabled() bool { return m.enabled }

func (m *memArchive) Put(_ context.Context, key string, body []byte, _ string) error {
	m.objects[key] = body
	return nil
}

func TestExportCommands_ArchiveRevenue(t *testing.T) {
	ctx := context.Background()
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	clk := clock.NewMockClock(time.Date(2024, 1, 31, 16, 4, 5, 0, time.UTC)) // 2024-02-01 01:04:05 Seoul

	t.Run("key is partitioned by salon month", func(t *testing.T) {
		store := &memArchive{enabled: true, objects: map[string][]byte{}}
		key, err := commands.NewExportCommands(store, "revenue/", clk, seoul).ArchiveRevenue(ctx, "revenue_thisMonth.csv", []byte("x"))

		require.NoError(t, err)
		assert.Equal(t, "revenue/2024/02/010405_revenue_thisMonth.csv", key)
		assert.Equal(t, []byte("x"), store.objects[key])
	})

	t.Run("disabled store", func(t *testing.T) {
		store := &memArchive{objects: map[string][]byte{}}
		key, err := commands.NewExportCommands(store, "revenue/", clk, seoul).ArchiveRevenue(ctx, "r.csv", []byte("x"))

		require.NoError(t, err)
		assert.Empty(t, key)
		assert.Empty(t, store.objects)
	})
}
