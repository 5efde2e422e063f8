package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"grooming-salon/internal/domain/notification"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/pkg/timezone"
	"grooming-salon/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReminderTemplateMissing = errs.Mark(errs.New("reminder template not found"), errs.ErrNotFound)

type ReminderResult struct {
	Date    string      `json:"date"`
	Sent    int         `json:"sent"`
	Skipped int         `json:"skipped"`
	Failed  int         `json:"failed"`
	Errors  []uuid.UUID `json:"failed_booking_ids,omitempty"`
}

type ReminderCommands interface {
	// SendReminders messages every customer with a scheduled booking on the
	// next salon day.
	SendReminders(ctx context.Context) (*ReminderResult, error)
}

type reminderCommandsImpl struct {
	uow          shared.UnitOfWork
	source       ReminderSource
	sender       MessageSender
	templateName string
	clock        clock.Clock
	loc          *time.Location
	logger       *slog.Logger
}

func NewReminderCommands(
	uow shared.UnitOfWork,
	source ReminderSource,
	sender MessageSender,
	templateName string,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) ReminderCommands {
	return &reminderCommandsImpl{
		uow:          uow,
		source:       source,
		sender:       sender,
		templateName: templateName,
		clock:        clk,
		loc:          loc,
		logger:       logger,
	}
}

func (r *reminderCommandsImpl) SendReminders(ctx context.Context) (*ReminderResult, error) {
	var tmpl *notification.Template
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Templates().FindByName(ctx, r.templateName)
		if err != nil {
			return repoErr(err, ErrReminderTemplateMissing, nil, "failed to load reminder template")
		}
		tmpl = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	start := timezone.StartOfDay(r.clock.Now(), r.loc).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	targets, err := r.source.ScheduledBetween(ctx, start, end)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load bookings for reminders")
	}

	result := &ReminderResult{Date: start.Format("2006-01-02")}
	for _, t := range targets {
		if t.Phone == nil || strings.TrimSpace(*t.Phone) == "" {
			result.Skipped++
			continue
		}
		body := tmpl.Render(notification.VariablesFor(notification.BookingContext{
			Start:        t.StartTime,
			PetName:      t.PetName,
			GuardianName: t.GuardianName,
			ServiceNames: t.ServiceNames,
			Phone:        t.Phone,
			Memo:         t.Memo,
		}, r.loc))

		if err := r.sender.Send(ctx, strings.TrimSpace(*t.Phone), body); err != nil {
			r.logger.ErrorContext(ctx, "failed to send reminder",
				slog.String("booking_id", t.BookingID.String()),
				slog.Any("error", err),
			)
			result.Failed++
			result.Errors = append(result.Errors, t.BookingID)
			continue
		}
		result.Sent++
	}

	r.logger.InfoContext(ctx, "reminders processed",
		slog.String("date", result.Date),
		slog.Int("sent", result.Sent),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}
