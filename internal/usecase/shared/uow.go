package shared

import (
	"context"
	"time"

	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/domain/catalog"
	"grooming-salon/internal/domain/customer"
	"grooming-salon/internal/domain/notification"
	"grooming-salon/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Bookings() BookingRepository
	Customers() CustomerRepository
	Services() ServiceRepository
	Templates() TemplateRepository
	Users() UserRepository
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// Overlapping returns non-cancelled bookings whose interval intersects
	// [start, end), excluding the booking with id exclude.
	Overlapping(ctx context.Context, start, end time.Time, exclude uuid.UUID) ([]*booking.Booking, error)
	// LockSchedule serializes schedule writers until the transaction ends.
	LockSchedule(ctx context.Context) error
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	Create(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]*catalog.Service, error)
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	Create(ctx context.Context, s *catalog.Service) error
	Update(ctx context.Context, s *catalog.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TemplateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*notification.Template, error)
	FindByName(ctx context.Context, name string) (*notification.Template, error)
	Create(ctx context.Context, t *notification.Template) error
	Update(ctx context.Context, t *notification.Template) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
