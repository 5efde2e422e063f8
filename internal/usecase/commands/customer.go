package commands

import (
	"context"

	"grooming-salon/internal/domain/customer"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerCommands interface {
	Create(ctx context.Context, req reqdto.CreateCustomerRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCustomerCommands(uow shared.UnitOfWork, clk clock.Clock) CustomerCommands {
	return &customerCommandsImpl{uow: uow, clock: clk}
}

func (c *customerCommandsImpl) Create(ctx context.Context, req reqdto.CreateCustomerRequest) (uuid.UUID, error) {
	cust, err := customer.NewCustomer(req.ToDomain(), c.clock.Now())
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Create(ctx, cust); err != nil {
			return repoErr(err, nil, nil, "failed to create customer")
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return cust.ID(), nil
}

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Customers().FindByID(ctx, id)
		if err != nil {
			return repoErr(err, ErrCustomerNotFound, nil, "failed to load customer")
		}
		if err := cust.Replace(req.ToDomain(cust.Profile()), c.clock.Now()); err != nil {
			return invalid(err)
		}
		if err := tx.Customers().Update(ctx, cust); err != nil {
			return repoErr(err, ErrCustomerNotFound, nil, "failed to update customer")
		}
		return nil
	})
}

// Delete refuses while bookings still reference the customer.
func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Customers().Delete(ctx, id)
		if err == nil {
			return nil
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrCustomerHasBookings
		}
		return repoErr(err, ErrCustomerNotFound, nil, "failed to delete customer")
	})
}
