package scheduler

import (
	"context"
	"log/slog"
	"time"

	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 5 * time.Minute

// ReminderScheduler runs the reminder job on a six-field cron expression
// (seconds first) evaluated in the salon time zone.
type ReminderScheduler struct {
	cron      *cron.Cron
	reminders commands.ReminderCommands
	logger    *slog.Logger
}

func NewReminderScheduler(expr string, loc *time.Location, reminders commands.ReminderCommands, logger *slog.Logger) (*ReminderScheduler, error) {
	s := &ReminderScheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		reminders: reminders,
		logger:    logger,
	}
	if _, err := s.cron.AddFunc(expr, s.run); err != nil {
		return nil, errs.Wrapf(err, "invalid reminder schedule %q", expr)
	}
	return s, nil
}

func (s *ReminderScheduler) Start() {
	s.cron.Start()
	s.logger.Info("reminder scheduler started", slog.Time("next_run", s.Next()))
}

// Stop waits for a running job to finish or ctx to expire.
func (s *ReminderScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ReminderScheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *ReminderScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	result, err := s.reminders.SendReminders(ctx)
	if err != nil {
		s.logger.Error("reminder job failed", slog.Any("error", err))
		return
	}
	s.logger.Info("reminder job finished",
		slog.String("date", result.Date),
		slog.Int("sent", result.Sent),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)
}
