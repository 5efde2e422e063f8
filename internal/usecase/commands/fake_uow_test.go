//go:build unit

package commands_test

import (
	"context"
	"sort"
	"time"

	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/domain/catalog"
	"grooming-salon/internal/domain/customer"
	"grooming-salon/internal/domain/notification"
	"grooming-salon/internal/domain/user"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/usecase/shared"

	"github.com/google/uuid"
)

// memUoW is an in-memory unit of work. Writes inside a failed Within are
// kept; the tests only look at state after successful calls.
type memUoW struct {
	bookings  map[uuid.UUID]*booking.Booking
	customers map[uuid.UUID]*customer.Customer
	services  map[uuid.UUID]*catalog.Service
	templates map[uuid.UUID]*notification.Template
	users     map[uuid.UUID]*user.User

	locks     int
	failWrite error
}

func newMemUoW() *memUoW {
	return &memUoW{
		bookings:  map[uuid.UUID]*booking.Booking{},
		customers: map[uuid.UUID]*customer.Customer{},
		services:  map[uuid.UUID]*catalog.Service{},
		templates: map[uuid.UUID]*notification.Template{},
		users:     map[uuid.UUID]*user.User{},
	}
}

func (m *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, memTx{m})
}

func (m *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, memTx{m})
}

type memTx struct{ m *memUoW }

func (t memTx) Bookings() shared.BookingRepository   { return memBookings{t.m} }
func (t memTx) Customers() shared.CustomerRepository { return memCustomers{t.m} }
func (t memTx) Services() shared.ServiceRepository   { return memServices{t.m} }
func (t memTx) Templates() shared.TemplateRepository { return memTemplates{t.m} }
func (t memTx) Users() shared.UserRepository         { return memUsers{t.m} }

type memBookings struct{ m *memUoW }

func (r memBookings) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.m.bookings[id]
	if !ok {
		return nil, infra.NewNotFound("booking not found")
	}
	return b, nil
}

func (r memBookings) Overlapping(_ context.Context, start, end time.Time, exclude uuid.UUID) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.m.bookings {
		if b.ID() == exclude || !b.Blocks() {
			continue
		}
		s, e := b.Interval()
		if s.Before(end) && e.After(start) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime().Before(out[j].StartTime()) })
	return out, nil
}

func (r memBookings) LockSchedule(context.Context) error {
	r.m.locks++
	return nil
}

func (r memBookings) Create(_ context.Context, b *booking.Booking) error {
	if r.m.failWrite != nil {
		return r.m.failWrite
	}
	r.m.bookings[b.ID()] = b
	return nil
}

func (r memBookings) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.m.bookings[b.ID()]; !ok {
		return infra.NewNotFound("booking not found")
	}
	r.m.bookings[b.ID()] = b
	return nil
}

func (r memBookings) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.m.bookings[id]; !ok {
		return infra.NewNotFound("booking not found")
	}
	delete(r.m.bookings, id)
	return nil
}

type memCustomers struct{ m *memUoW }

func (r memCustomers) FindByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, ok := r.m.customers[id]
	if !ok {
		return nil, infra.NewNotFound("customer not found")
	}
	return c, nil
}

func (r memCustomers) Create(_ context.Context, c *customer.Customer) error {
	r.m.customers[c.ID()] = c
	return nil
}

func (r memCustomers) Update(_ context.Context, c *customer.Customer) error {
	if _, ok := r.m.customers[c.ID()]; !ok {
		return infra.NewNotFound("customer not found")
	}
	r.m.customers[c.ID()] = c
	return nil
}

func (r memCustomers) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.m.customers[id]; !ok {
		return infra.NewNotFound("customer not found")
	}
	if r.m.failWrite != nil {
		return r.m.failWrite
	}
	delete(r.m.customers, id)
	return nil
}

type memServices struct{ m *memUoW }

func (r memServices) FindAll(context.Context) ([]*catalog.Service, error) {
	out := make([]*catalog.Service, 0, len(r.m.services))
	for _, s := range r.m.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (r memServices) FindByID(_ context.Context, id uuid.UUID) (*catalog.Service, error) {
	s, ok := r.m.services[id]
	if !ok {
		return nil, infra.NewNotFound("service not found")
	}
	return s, nil
}

func (r memServices) Create(_ context.Context, s *catalog.Service) error {
	if r.m.failWrite != nil {
		return r.m.failWrite
	}
	r.m.services[s.ID()] = s
	return nil
}

func (r memServices) Update(_ context.Context, s *catalog.Service) error {
	r.m.services[s.ID()] = s
	return nil
}

func (r memServices) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.m.services[id]; !ok {
		return infra.NewNotFound("service not found")
	}
	delete(r.m.services, id)
	return nil
}

type memTemplates struct{ m *memUoW }

func (r memTemplates) FindByID(_ context.Context, id uuid.UUID) (*notification.Template, error) {
	t, ok := r.m.templates[id]
	if !ok {
		return nil, infra.NewNotFound("template not found")
	}
	return t, nil
}

func (r memTemplates) FindByName(_ context.Context, name string) (*notification.Template, error) {
	for _, t := range r.m.templates {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, infra.NewNotFound("template not found")
}

func (r memTemplates) Create(_ context.Context, t *notification.Template) error {
	if r.m.failWrite != nil {
		return r.m.failWrite
	}
	r.m.templates[t.ID()] = t
	return nil
}

func (r memTemplates) Update(_ context.Context, t *notification.Template) error {
	r.m.templates[t.ID()] = t
	return nil
}

func (r memTemplates) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.m.templates[id]; !ok {
		return infra.NewNotFound("template not found")
	}
	delete(r.m.templates, id)
	return nil
}

type memUsers struct{ m *memUoW }

func (r memUsers) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.m.users[id]
	if !ok {
		return nil, infra.NewNotFound("user not found")
	}
	return u, nil
}

func (r memUsers) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, infra.NewNotFound("user not found")
}

func (r memUsers) Create(_ context.Context, u *user.User) error {
	if r.m.failWrite != nil {
		return r.m.failWrite
	}
	r.m.users[u.ID()] = u
	return nil
}

func (r memUsers) Update(_ context.Context, u *user.User) error {
	r.m.users[u.ID()] = u
	return nil
}

func (r memUsers) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.m.users[id]; !ok {
		return infra.NewNotFound("user not found")
	}
	delete(r.m.users, id)
	return nil
}
