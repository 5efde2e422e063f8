//go:build unit

package queries_test

import (
	"context"
	"time"

	"grooming-salon/internal/infra"
	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

type fakeServiceStore struct {
	services []queries.ServiceView
	calls    int
}

func (f *fakeServiceStore) List(context.Context) ([]queries.ServiceView, error) {
	f.calls++
	return f.services, nil
}

func (f *fakeServiceStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	for _, s := range f.services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, infra.NewNotFound("service not found")
}

type fakeServiceCache struct {
	stored []queries.ServiceView
	hit    bool
	getErr error
	sets   int
}

func (f *fakeServiceCache) Get(context.Context) ([]queries.ServiceView, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.stored, f.hit, nil
}

func (f *fakeServiceCache) Set(_ context.Context, services []queries.ServiceView) error {
	f.stored, f.hit = services, true
	f.sets++
	return nil
}

// fakeBookingStore filters rows on start_time like the SQL store does.
type fakeBookingStore struct {
	rows       []queries.BookingView
	start, end time.Time
}

func (f *fakeBookingStore) FindRange(_ context.Context, start, end time.Time) ([]*queries.BookingView, error) {
	f.start, f.end = start, end
	var out []*queries.BookingView
	for i := range f.rows {
		r := f.rows[i]
		if !r.StartTime.Before(start) && !r.StartTime.After(end) {
			out = append(out, &r)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			r := f.rows[i]
			return &r, nil
		}
	}
	return nil, infra.NewNotFound("booking not found")
}

type fakeRevenueStore struct {
	rows []queries.RevenueRow
}

func (f *fakeRevenueStore) CompletedBetween(_ context.Context, start, end time.Time) ([]queries.RevenueRow, error) {
	var out []queries.RevenueRow
	for _, r := range f.rows {
		if !r.StartTime.Before(start) && !r.StartTime.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeCustomerStore struct {
	rows       []queries.CustomerView
	lastLimit  int
	afterID    uuid.UUID
	afterCalls int
}

func (f *fakeCustomerStore) FirstPage(_ context.Context, limit int) ([]queries.CustomerView, error) {
	f.lastLimit = limit
	return head(f.rows, limit), nil
}

func (f *fakeCustomerStore) After(_ context.Context, _ time.Time, id uuid.UUID, limit int) ([]queries.CustomerView, error) {
	f.lastLimit = limit
	f.afterID = id
	f.afterCalls++
	for i, r := range f.rows {
		if r.ID == id {
			return head(f.rows[i+1:], limit), nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, infra.NewNotFound("customer not found")
}

func (f *fakeCustomerStore) Search(_ context.Context, _ string, limit int) ([]queries.CustomerView, error) {
	f.lastLimit = limit
	return head(f.rows, limit), nil
}

func head[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
