//go:build unit || e2e

package builder

import (
	"grooming-salon/internal/domain/customer"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/pkg/ptr"
	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID           uuid.UUID
	GuardianName string
	PetName      string
	Species      *string
	Weight       *float64
	Memo         *string
	Phone        *string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:           uuid.New(),
		GuardianName: "이보호",
		PetName:      "초코",
		Species:      ptr.Of("말티즈"),
		Weight:       ptr.Of(3.2),
		Phone:        ptr.Of("010-1234-5678"),
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

func (c *CustomerBuilder) WithNames(guardian, pet string) *CustomerBuilder {
	c.GuardianName = guardian
	c.PetName = pet
	return c
}

func (c *CustomerBuilder) WithPhone(phone *string) *CustomerBuilder {
	c.Phone = phone
	return c
}

func (c *CustomerBuilder) profile() customer.Profile {
	return customer.Profile{
		GuardianName: c.GuardianName,
		PetName:      c.PetName,
		Species:      c.Species,
		Weight:       c.Weight,
		Memo:         c.Memo,
		Phone:        c.Phone,
	}
}

func (c *CustomerBuilder) BuildDomain() *customer.Customer {
	return customer.Reconstruct(c.ID, c.profile(), FixedNow, FixedNow)
}

func (c *CustomerBuilder) BuildView() queries.CustomerView {
	return queries.CustomerView{
		ID:           c.ID,
		GuardianName: c.GuardianName,
		PetName:      c.PetName,
		Species:      c.Species,
		Weight:       c.Weight,
		Memo:         c.Memo,
		Phone:        c.Phone,
		CreatedAt:    FixedNow,
		UpdatedAt:    FixedNow,
	}
}

func (c *CustomerBuilder) BuildSummary() queries.CustomerSummary {
	return queries.CustomerSummary{
		ID:           c.ID,
		GuardianName: c.GuardianName,
		PetName:      c.PetName,
		Phone:        c.Phone,
	}
}

func (c *CustomerBuilder) BuildDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		GuardianName: c.GuardianName,
		PetName:      c.PetName,
		Species:      c.Species,
		Weight:       c.Weight,
		Memo:         c.Memo,
		Phone:        c.Phone,
	}
}
