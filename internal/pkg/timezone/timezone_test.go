//go:build unit

package timezone_test

import (
	"fmt"
	"testing"
	"time"

	"grooming-salon/internal/pkg/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	loc, err := timezone.Load("")
	require.NoError(t, err)
	assert.Equal(t, timezone.DefaultTimezone, loc.String())

	_, err = timezone.Load("Mars/Olympus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown timezone "Mars/Olympus"`)
	assert.Contains(t, fmt.Sprintf("%+v", err), "timezone.Load", "wrapped error keeps the call stack")
}

func TestSameDay(t *testing.T) {
	seoul, err := timezone.Load("Asia/Seoul")
	require.NoError(t, err)

	// 2024-01-01T16:00Z is already Jan 2 in Seoul
	a := time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 2, 9, 0, 0, 0, seoul)

	assert.True(t, timezone.SameDay(a, b, seoul))
	assert.False(t, timezone.SameDay(a, b, time.UTC))
}

func TestMonthRange(t *testing.T) {
	seoul, err := timezone.Load("Asia/Seoul")
	require.NoError(t, err)

	start, end := timezone.MonthRange(2024, time.February, seoul)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, seoul), start)
	assert.Equal(t, 29, end.Day())
	assert.Equal(t, time.February, end.Month())
	assert.True(t, end.Before(time.Date(2024, 3, 1, 0, 0, 0, 0, seoul)))
}

func TestStartOfDay(t *testing.T) {
	seoul, err := timezone.Load("Asia/Seoul")
	require.NoError(t, err)

	got := timezone.StartOfDay(time.Date(2024, 1, 1, 20, 30, 0, 0, time.UTC), seoul)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, seoul), got)
}
