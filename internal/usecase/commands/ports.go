package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock
//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock
//go:generate mockgen -source=customer.go -destination=../../../tests/mock/commands/customer.go -package=commandsmock
//go:generate mockgen -source=export.go -destination=../../../tests/mock/commands/export.go -package=commandsmock
//go:generate mockgen -source=reminder.go -destination=../../../tests/mock/commands/reminder.go -package=commandsmock
//go:generate mockgen -source=service.go -destination=../../../tests/mock/commands/service.go -package=commandsmock
//go:generate mockgen -source=template.go -destination=../../../tests/mock/commands/template.go -package=commandsmock
//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock

import (
	"context"
	"time"

	"grooming-salon/internal/domain/user"

	"github.com/google/uuid"
)

// MessageSender delivers a text message to a phone number.
type MessageSender interface {
	Send(ctx context.Context, to, body string) error
}

// CatalogInvalidator drops cached catalog reads after a service write.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ArchiveStore keeps exported files. A disabled store accepts nothing.
type ArchiveStore interface {
	Enabled() bool
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// TokenIssuer signs access tokens for a logged-in user.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, time.Time, error)
}

// ReminderTarget is the write-side snapshot of a booking due a reminder.
type ReminderTarget struct {
	BookingID    uuid.UUID
	StartTime    time.Time
	GuardianName string
	PetName      string
	Phone        *string
	Memo         *string
	ServiceNames []string
}

type ReminderSource interface {
	// ScheduledBetween lists scheduled bookings with start_time in [start, end].
	ScheduledBetween(ctx context.Context, start, end time.Time) ([]ReminderTarget, error)
}
