package request

import (
	"grooming-salon/internal/domain/customer"
	"grooming-salon/internal/pkg/patch"
	"grooming-salon/internal/usecase/queries"
)

type CreateCustomerRequest struct {
	GuardianName string   `json:"guardian_name" binding:"required,max=100"`
	PetName      string   `json:"pet_name" binding:"required,max=100"`
	Species      *string  `json:"species" binding:"omitempty,max=100"`
	Weight       *float64 `json:"weight" binding:"omitempty,min=0"`
	Memo         *string  `json:"memo" binding:"omitempty,max=1000"`
	Phone        *string  `json:"phone" binding:"omitempty,max=20"`
}

func (r *CreateCustomerRequest) ToDomain() customer.Profile {
	return customer.Profile{
		GuardianName: r.GuardianName,
		PetName:      r.PetName,
		Species:      r.Species,
		Weight:       r.Weight,
		Memo:         r.Memo,
		Phone:        r.Phone,
	}
}

type UpdateCustomerRequest struct {
	GuardianName *string  `json:"guardian_name" binding:"omitempty,max=100"`
	PetName      *string  `json:"pet_name" binding:"omitempty,max=100"`
	Species      *string  `json:"species" binding:"omitempty,max=100"`
	Weight       *float64 `json:"weight" binding:"omitempty,min=0"`
	Memo         *string  `json:"memo" binding:"omitempty,max=1000"`
	Phone        *string  `json:"phone" binding:"omitempty,max=20"`
}

// ToDomain merges the patch onto the current profile.
func (r *UpdateCustomerRequest) ToDomain(current customer.Profile) customer.Profile {
	return customer.Profile{
		GuardianName: patch.Coalesce(r.GuardianName, current.GuardianName),
		PetName:      patch.Coalesce(r.PetName, current.PetName),
		Species:      patch.Optional(r.Species, current.Species),
		Weight:       patch.Optional(r.Weight, current.Weight),
		Memo:         patch.Optional(r.Memo, current.Memo),
		Phone:        patch.Optional(r.Phone, current.Phone),
	}
}

type CustomerListQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q CustomerListQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

type CustomerSearchQuery struct {
	Q string `form:"q" binding:"required,max=100"`
}
