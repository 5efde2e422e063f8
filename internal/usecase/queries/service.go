package queries

import (
	"context"
	"log/slog"

	"grooming-salon/internal/domain/catalog"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.Mark(errs.New("service not found"), errs.ErrNotFound)

type ServiceReadStore interface {
	List(ctx context.Context) ([]ServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

// ServiceCache holds the full service list between catalog writes.
type ServiceCache interface {
	Get(ctx context.Context) ([]ServiceView, bool, error)
	Set(ctx context.Context, services []ServiceView) error
}

type ServiceQueries interface {
	List(ctx context.Context) ([]ServiceView, error)
	Get(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	// Catalog returns the service list as calculator input.
	Catalog(ctx context.Context) ([]*catalog.Service, error)
}

type serviceQueriesImpl struct {
	store  ServiceReadStore
	cache  ServiceCache
	logger *slog.Logger
}

func NewServiceQueries(store ServiceReadStore, cache ServiceCache, logger *slog.Logger) ServiceQueries {
	return &serviceQueriesImpl{store: store, cache: cache, logger: logger}
}

// List reads through the cache. Cache failures fall back to the store.
func (q *serviceQueriesImpl) List(ctx context.Context) ([]ServiceView, error) {
	cached, ok, err := q.cache.Get(ctx)
	if err != nil {
		q.logger.WarnContext(ctx, "service cache read failed", slog.Any("error", err))
	} else if ok {
		return cached, nil
	}

	services, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list services")
	}
	if err := q.cache.Set(ctx, services); err != nil {
		q.logger.WarnContext(ctx, "service cache write failed", slog.Any("error", err))
	}
	return services, nil
}

func (q *serviceQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to get service")
	}
	return v, nil
}

func (q *serviceQueriesImpl) Catalog(ctx context.Context) ([]*catalog.Service, error) {
	views, err := q.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCatalog(views), nil
}

func toCatalog(views []ServiceView) []*catalog.Service {
	out := make([]*catalog.Service, 0, len(views))
	for _, v := range views {
		out = append(out, v.Domain())
	}
	return out
}

// serviceIndex maps ids to views for resolving booking selections.
func serviceIndex(views []ServiceView) map[uuid.UUID]ServiceView {
	idx := make(map[uuid.UUID]ServiceView, len(views))
	for _, v := range views {
		idx[v.ID] = v
	}
	return idx
}

// resolveServices fills the Services of each booking, dropping unknown ids.
func resolveServices(bookings []*BookingView, idx map[uuid.UUID]ServiceView) {
	for _, b := range bookings {
		b.Services = make([]ServiceView, 0, len(b.ServiceIDs))
		for _, id := range b.ServiceIDs {
			if s, ok := idx[id]; ok {
				b.Services = append(b.Services, s)
			}
		}
	}
}
