//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"grooming-salon/internal/domain/revenue"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/pkg/ptr"
	"grooming-salon/internal/usecase/queries"
	"grooming-salon/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueQueries(t *testing.T) {
	ctx := context.Background()
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, seoul)

	bath := builder.NewServiceBuilder().WithName("목욕").WithPrice(30000).BuildView()
	full := builder.NewServiceBuilder().WithName("전체미용").WithPrice(50000).BuildView()
	services := queries.NewServiceQueries(&fakeServiceStore{services: []queries.ServiceView{bath, full}}, &fakeServiceCache{}, slog.Default())

	store := &fakeRevenueStore{rows: []queries.RevenueRow{
		// 2024-01-02 00:30 Seoul, still January 1st in UTC
		{StartTime: time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), TotalPrice: ptr.Of(int64(80000)), ServiceIDs: []uuid.UUID{bath.ID, full.ID}},
		{StartTime: time.Date(2024, 1, 5, 10, 0, 0, 0, seoul), TotalPrice: ptr.Of(int64(50000)), ServiceIDs: []uuid.UUID{full.ID}},
		{StartTime: time.Date(2023, 12, 10, 10, 0, 0, 0, seoul), TotalPrice: ptr.Of(int64(65000)), ServiceIDs: []uuid.UUID{full.ID}},
	}}
	q := queries.NewRevenueQueries(store, services, clock.NewMockClock(now), seoul)

	t.Run("period defaults to this month", func(t *testing.T) {
		p, err := q.Period("", "", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, seoul), p.Start)
	})

	t.Run("custom period covers whole end day", func(t *testing.T) {
		p, err := q.Period("", "2024-01-01", "2024-01-31")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01~2024-01-31", p.Label)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, seoul).Add(-time.Nanosecond), p.End)
	})

	t.Run("bad input", func(t *testing.T) {
		_, err := q.Period("", "2024-13-01", "2024-01-31")
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = q.Period("fortnight", "", "")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("report", func(t *testing.T) {
		p, err := q.Period("", "2024-01-01", "2024-01-31")
		require.NoError(t, err)

		report, err := q.Report(ctx, p)
		require.NoError(t, err)

		assert.Equal(t, revenue.Summary{Total: 130000, Bookings: 2, AvgPerBooking: 65000}, report.Summary)
		assert.Equal(t, []revenue.Daily{
			{Date: "2024-01-02", Total: 80000, Bookings: 1},
			{Date: "2024-01-05", Total: 50000, Bookings: 1},
		}, report.Daily)
		require.Len(t, report.ByService, 2)
		assert.Equal(t, "전체미용", report.ByService[0].Name)
		assert.Equal(t, int64(100000), report.ByService[0].Revenue)
		assert.Equal(t, 2, report.ByService[0].Count)

		assert.Equal(t, int64(65000), report.Previous.Total)
		assert.Equal(t, 100.0, report.Growth)
	})

	t.Run("export", func(t *testing.T) {
		p, err := q.Period("", "2024-01-01", "2024-01-31")
		require.NoError(t, err)

		export, err := q.Export(ctx, p)
		require.NoError(t, err)

		assert.Equal(t, "매출_2024-01-01~2024-01-31_20240120.csv", export.FileName)
		lines := strings.Split(strings.TrimPrefix(string(export.Content), "\ufeff"), "\n")
		assert.Equal(t, []string{"날짜,매출,예약 수", "2024-01-02,80000,1", "2024-01-05,50000,1", ""}, lines)
	})
}
