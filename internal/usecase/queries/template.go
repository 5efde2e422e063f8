package queries

import (
	"context"
	"time"

	"grooming-salon/internal/domain/notification"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTemplateNotFound = errs.Mark(errs.New("template not found"), errs.ErrNotFound)

type TemplateReadStore interface {
	List(ctx context.Context) ([]TemplateView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*TemplateView, error)
}

type PreviewView struct {
	TemplateID uuid.UUID `json:"template_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	Message    string    `json:"message"`
}

type TemplateQueries interface {
	List(ctx context.Context) ([]TemplateView, error)
	Get(ctx context.Context, id uuid.UUID) (*TemplateView, error)
	Preview(ctx context.Context, templateID, bookingID uuid.UUID) (*PreviewView, error)
}

type templateQueriesImpl struct {
	store    TemplateReadStore
	bookings BookingQueries
	loc      *time.Location
}

func NewTemplateQueries(store TemplateReadStore, bookings BookingQueries, loc *time.Location) TemplateQueries {
	return &templateQueriesImpl{store: store, bookings: bookings, loc: loc}
}

func (q *templateQueriesImpl) List(ctx context.Context) ([]TemplateView, error) {
	rows, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list templates")
	}
	return rows, nil
}

func (q *templateQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*TemplateView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, errs.Wrap(err, "failed to get template")
	}
	return v, nil
}

// Preview renders the template against an existing booking.
func (q *templateQueriesImpl) Preview(ctx context.Context, templateID, bookingID uuid.UUID) (*PreviewView, error) {
	t, err := q.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	b, err := q.bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	vars := notification.VariablesFor(BookingContextOf(b), q.loc)
	return &PreviewView{
		TemplateID: t.ID,
		BookingID:  b.ID,
		Message:    notification.Render(t.Template, vars),
	}, nil
}

func BookingContextOf(b *BookingView) notification.BookingContext {
	return notification.BookingContext{
		Start:        b.StartTime,
		PetName:      b.Customer.PetName,
		GuardianName: b.Customer.GuardianName,
		ServiceNames: b.ServiceNames(),
		Phone:        b.Customer.Phone,
		Memo:         b.Memo,
	}
}
