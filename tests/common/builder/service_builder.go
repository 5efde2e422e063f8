//go:build unit || e2e

package builder

import (
	"grooming-salon/internal/domain/catalog"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID            uuid.UUID
	Name          string
	DurationHours float64
	Price         *int64
	Tag           string
}

func NewServiceBuilder() *ServiceBuilder {
	price := int64(50000)
	return &ServiceBuilder{
		ID:            uuid.New(),
		Name:          "전체미용",
		DurationHours: 2,
		Price:         &price,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) WithName(name string) *ServiceBuilder {
	s.Name = name
	return s
}

func (s *ServiceBuilder) WithDuration(hours float64) *ServiceBuilder {
	s.DurationHours = hours
	return s
}

func (s *ServiceBuilder) WithPrice(price int64) *ServiceBuilder {
	s.Price = &price
	return s
}

func (s *ServiceBuilder) WithoutPrice() *ServiceBuilder {
	s.Price = nil
	return s
}

func (s *ServiceBuilder) WithTag(tag catalog.Tag) *ServiceBuilder {
	s.Tag = tag.String()
	return s
}

func (s *ServiceBuilder) BuildDomain() *catalog.Service {
	return catalog.ReconstructService(s.ID, s.Name, s.DurationHours, s.Price, catalog.Tag(s.Tag), FixedNow)
}

func (s *ServiceBuilder) BuildView() queries.ServiceView {
	return queries.ServiceView{
		ID:            s.ID,
		Name:          s.Name,
		DurationHours: s.DurationHours,
		Price:         s.Price,
		Tag:           s.Tag,
		CreatedAt:     FixedNow,
	}
}

func (s *ServiceBuilder) BuildDTO() reqdto.ServiceRequest {
	return reqdto.ServiceRequest{
		Name:          s.Name,
		DurationHours: s.DurationHours,
		Price:         s.Price,
		Tag:           s.Tag,
	}
}
