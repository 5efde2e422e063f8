//go:build unit

package revenue_test

import (
	"bytes"
	"testing"
	"time"

	"grooming-salon/internal/domain/revenue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	err := revenue.WriteCSV(&buf, []revenue.Daily{
		{Date: "2024-03-01", Total: 30000, Bookings: 1},
		{Date: "2024-03-02", Total: 55000, Bookings: 2},
	})

	require.NoError(t, err)
	want := "\ufeff날짜,매출,예약 수\n2024-03-01,30000,1\n2024-03-02,55000,2\n"
	assert.Equal(t, want, buf.String())
}

func TestExportFileName(t *testing.T) {
	loc := seoul(t)
	// 16:00 UTC is already the next day in Seoul.
	now := time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC)

	assert.Equal(t, "매출_이번 달_20240316.csv", revenue.ExportFileName("이번 달", now, loc))
}
