package commands

import (
	"context"

	"grooming-salon/internal/domain/booking"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, actorID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingPolicy holds the schedule rules a salon opts into. The zero value
// allows overlapping bookings, e.g. two groomers working the same hour.
type BookingPolicy struct {
	RejectOverlaps bool
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	calc   *booking.Calculator
	policy BookingPolicy
	clock  clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, calc *booking.Calculator, policy BookingPolicy, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, calc: calc, policy: policy, clock: clk}
}

// Create derives end time and price from the catalog inside the transaction.
// Under RejectOverlaps it also refuses a booking that overlaps another
// active one.
func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, actorID uuid.UUID) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Customers().FindByID(ctx, req.CustomerID); err != nil {
			return repoErr(err, ErrCustomerNotFound, nil, "failed to load customer")
		}
		services, err := tx.Services().FindAll(ctx)
		if err != nil {
			return errs.Wrap(err, "failed to load catalog")
		}

		b, err := booking.NewBooking(c.calc, services, req.ToDomain(actorID), c.clock.Now())
		if err != nil {
			return invalid(err)
		}
		if err := c.ensureFree(ctx, tx, b); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return repoErr(err, nil, nil, "failed to create booking")
		}
		createdID = b.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (c *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) error {
	changes := req.ToDomain()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return repoErr(err, ErrBookingNotFound, nil, "failed to load booking")
		}
		if changes.CustomerID != nil {
			if _, err := tx.Customers().FindByID(ctx, *changes.CustomerID); err != nil {
				return repoErr(err, ErrCustomerNotFound, nil, "failed to load customer")
			}
		}

		services, err := tx.Services().FindAll(ctx)
		if err != nil {
			return errs.Wrap(err, "failed to load catalog")
		}
		if err := b.Apply(c.calc, services, changes, c.clock.Now()); err != nil {
			return invalid(err)
		}
		if err := c.ensureFree(ctx, tx, b); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return repoErr(err, ErrBookingNotFound, nil, "failed to update booking")
		}
		return nil
	})
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Delete(ctx, id); err != nil {
			return repoErr(err, ErrBookingNotFound, nil, "failed to delete booking")
		}
		return nil
	})
}

// ensureFree serializes schedule writers and fails when b overlaps another
// non-cancelled booking. Cancelled bookings never conflict.
func (c *bookingCommandsImpl) ensureFree(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	if !c.policy.RejectOverlaps || !b.Blocks() {
		return nil
	}
	if err := tx.Bookings().LockSchedule(ctx); err != nil {
		return errs.Wrap(err, "failed to lock schedule")
	}
	start, end := b.Interval()
	overlapping, err := tx.Bookings().Overlapping(ctx, start, end, b.ID())
	if err != nil {
		return errs.Wrap(err, "failed to check overlapping bookings")
	}
	if len(overlapping) > 0 {
		return errs.Wrapf(ErrBookingConflict, "overlaps booking %s", overlapping[0].ID())
	}
	return nil
}
