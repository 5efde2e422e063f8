//go:build unit

package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"grooming-salon/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReminders struct {
	calls  int
	result *commands.ReminderResult
	err    error
}

func (f *fakeReminders) SendReminders(context.Context) (*commands.ReminderResult, error) {
	f.calls++
	return f.result, f.err
}

func TestNewReminderScheduler(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	t.Run("six field expression", func(t *testing.T) {
		s, err := NewReminderScheduler("0 0 10 * * *", seoul, &fakeReminders{}, slog.Default())
		require.NoError(t, err)
		require.Len(t, s.cron.Entries(), 1)
	})

	t.Run("five field expression is rejected", func(t *testing.T) {
		_, err := NewReminderScheduler("0 10 * * *", seoul, &fakeReminders{}, slog.Default())
		assert.ErrorContains(t, err, "invalid reminder schedule")
	})
}

func TestReminderScheduler_NextRunInSalonZone(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	s, err := NewReminderScheduler("0 0 10 * * *", seoul, &fakeReminders{}, slog.Default())
	require.NoError(t, err)
	s.cron.Start()
	defer s.cron.Stop()

	next := s.Next().In(seoul)
	assert.Equal(t, 10, next.Hour())
	assert.Equal(t, 0, next.Minute())
}

func TestReminderScheduler_Run(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		job := &fakeReminders{result: &commands.ReminderResult{Date: "2024-01-02", Sent: 3}}
		s, err := NewReminderScheduler("@every 1h", time.UTC, job, slog.Default())
		require.NoError(t, err)

		s.run()
		assert.Equal(t, 1, job.calls)
	})

	t.Run("failure is logged, not raised", func(t *testing.T) {
		job := &fakeReminders{err: errors.New("template missing")}
		s, err := NewReminderScheduler("@every 1h", time.UTC, job, slog.Default())
		require.NoError(t, err)

		assert.NotPanics(t, s.run)
		assert.Equal(t, 1, job.calls)
	})
}

func TestReminderScheduler_Stop(t *testing.T) {
	s, err := NewReminderScheduler("@every 1h", time.UTC, &fakeReminders{}, slog.Default())
	require.NoError(t, err)
	s.cron.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
