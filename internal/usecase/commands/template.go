package commands

import (
	"context"

	"grooming-salon/internal/domain/notification"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/usecase/shared"

	"github.com/google/uuid"
)

type TemplateCommands interface {
	Create(ctx context.Context, req reqdto.TemplateRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.TemplateRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type templateCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTemplateCommands(uow shared.UnitOfWork, clk clock.Clock) TemplateCommands {
	return &templateCommandsImpl{uow: uow, clock: clk}
}

func (t *templateCommandsImpl) Create(ctx context.Context, req reqdto.TemplateRequest) (uuid.UUID, error) {
	tmpl, err := notification.NewTemplate(req.Name, req.Template, t.clock.Now())
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Templates().Create(ctx, tmpl); err != nil {
			return repoErr(err, nil, ErrTemplateNameTaken, "failed to create template")
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return tmpl.ID(), nil
}

func (t *templateCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.TemplateRequest) error {
	return t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tmpl, err := tx.Templates().FindByID(ctx, id)
		if err != nil {
			return repoErr(err, ErrTemplateNotFound, nil, "failed to load template")
		}
		if err := tmpl.Update(req.Name, req.Template, t.clock.Now()); err != nil {
			return invalid(err)
		}
		if err := tx.Templates().Update(ctx, tmpl); err != nil {
			return repoErr(err, ErrTemplateNotFound, ErrTemplateNameTaken, "failed to update template")
		}
		return nil
	})
}

func (t *templateCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Templates().Delete(ctx, id); err != nil {
			return repoErr(err, ErrTemplateNotFound, nil, "failed to delete template")
		}
		return nil
	})
}
