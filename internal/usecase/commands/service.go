package commands

import (
	"context"
	"log/slog"

	"grooming-salon/internal/domain/catalog"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceCommands interface {
	Create(ctx context.Context, req reqdto.ServiceRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.ServiceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceCommandsImpl struct {
	uow    shared.UnitOfWork
	cache  CatalogInvalidator
	clock  clock.Clock
	logger *slog.Logger
}

func NewServiceCommands(uow shared.UnitOfWork, cache CatalogInvalidator, clk clock.Clock, logger *slog.Logger) ServiceCommands {
	return &serviceCommandsImpl{uow: uow, cache: cache, clock: clk, logger: logger}
}

func (s *serviceCommandsImpl) Create(ctx context.Context, req reqdto.ServiceRequest) (uuid.UUID, error) {
	tag, err := catalog.NewTag(req.Tag)
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	svc, err := catalog.NewService(req.Name, req.DurationHours, req.Price, tag, s.clock.Now())
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Services().Create(ctx, svc); err != nil {
			return repoErr(err, nil, ErrServiceNameTaken, "failed to create service")
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	s.invalidate(ctx)
	return svc.ID(), nil
}

func (s *serviceCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.ServiceRequest) error {
	tag, err := catalog.NewTag(req.Tag)
	if err != nil {
		return invalid(err)
	}
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := tx.Services().FindByID(ctx, id)
		if err != nil {
			return repoErr(err, ErrServiceNotFound, nil, "failed to load service")
		}
		if err := svc.Update(req.Name, req.DurationHours, req.Price, tag); err != nil {
			return invalid(err)
		}
		if err := tx.Services().Update(ctx, svc); err != nil {
			return repoErr(err, ErrServiceNotFound, ErrServiceNameTaken, "failed to update service")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete leaves existing bookings untouched; their selection simply stops
// resolving the removed id.
func (s *serviceCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Services().Delete(ctx, id); err != nil {
			return repoErr(err, ErrServiceNotFound, nil, "failed to delete service")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// invalidate runs after commit. A failure only leaves the cache stale until its TTL.
func (s *serviceCommandsImpl) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate service cache", slog.Any("error", err))
	}
}
