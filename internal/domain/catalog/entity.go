package catalog

import (
	"strings"
	"time"

	"grooming-salon/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errs.New("service name is required")
	ErrInvalidDuration = errs.New("service duration must be positive")
	ErrNegativePrice   = errs.New("service price cannot be negative")
	ErrInvalidTag      = errs.New("invalid service tag")
)

// Service is a catalog entry. Price is optional; nil means free.
type Service struct {
	id            uuid.UUID
	name          string
	durationHours float64
	price         *int64
	tag           Tag
	createdAt     time.Time
}

func NewService(name string, durationHours float64, price *int64, tag Tag, now time.Time) (*Service, error) {
	s := &Service{id: uuid.New(), createdAt: now}
	if err := s.set(name, durationHours, price, tag); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructService(id uuid.UUID, name string, durationHours float64, price *int64, tag Tag, createdAt time.Time) *Service {
	return &Service{
		id:            id,
		name:          name,
		durationHours: durationHours,
		price:         price,
		tag:           tag,
		createdAt:     createdAt,
	}
}

func (s *Service) Update(name string, durationHours float64, price *int64, tag Tag) error {
	return s.set(name, durationHours, price, tag)
}

func (s *Service) set(name string, durationHours float64, price *int64, tag Tag) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if durationHours <= 0 {
		return ErrInvalidDuration
	}
	if price != nil && *price < 0 {
		return ErrNegativePrice
	}
	if !tag.IsValid() {
		return ErrInvalidTag
	}
	s.name = name
	s.durationHours = durationHours
	s.price = price
	s.tag = tag
	return nil
}

func (s *Service) ID() uuid.UUID          { return s.id }
func (s *Service) Name() string           { return s.name }
func (s *Service) DurationHours() float64 { return s.durationHours }
func (s *Service) Price() *int64          { return s.price }
func (s *Service) Tag() Tag               { return s.tag }
func (s *Service) CreatedAt() time.Time   { return s.createdAt }

func (s *Service) PriceOrZero() int64 {
	if s.price == nil {
		return 0
	}
	return *s.price
}

// Index keys services by id. Later duplicates overwrite earlier ones.
func Index(services []*Service) map[uuid.UUID]*Service {
	idx := make(map[uuid.UUID]*Service, len(services))
	for _, s := range services {
		if s != nil {
			idx[s.id] = s
		}
	}
	return idx
}
