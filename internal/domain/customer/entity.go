package customer

import (
	"regexp"
	"strings"
	"time"

	"grooming-salon/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrGuardianNameRequired = errs.New("guardian name is required")
	ErrPetNameRequired      = errs.New("pet name is required")
	ErrNegativeWeight       = errs.New("weight cannot be negative")
	ErrInvalidPhone         = errs.New("invalid phone number")
	ErrNameTooLong          = errs.New("name is too long")
)

const MaxNameLength = 100

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\- ]{6,19}$`)

// Customer is a pet and its guardian. Optional fields are nil when unknown.
type Customer struct {
	id           uuid.UUID
	guardianName string
	petName      string
	species      *string
	weight       *float64
	memo         *string
	phone        *string
	createdAt    time.Time
	updatedAt    time.Time
}

type Profile struct {
	GuardianName string
	PetName      string
	Species      *string
	Weight       *float64
	Memo         *string
	Phone        *string
}

func NewCustomer(p Profile, now time.Time) (*Customer, error) {
	c := &Customer{id: uuid.New(), createdAt: now, updatedAt: now}
	if err := c.set(p); err != nil {
		return nil, err
	}
	return c, nil
}

func Reconstruct(id uuid.UUID, p Profile, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:           id,
		guardianName: p.GuardianName,
		petName:      p.PetName,
		species:      p.Species,
		weight:       p.Weight,
		memo:         p.Memo,
		phone:        p.Phone,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Replace overwrites the whole profile. Callers merge partial input first.
func (c *Customer) Replace(p Profile, now time.Time) error {
	if err := c.set(p); err != nil {
		return err
	}
	c.updatedAt = now
	return nil
}

func (c *Customer) set(p Profile) error {
	guardian := strings.TrimSpace(p.GuardianName)
	if guardian == "" {
		return ErrGuardianNameRequired
	}
	pet := strings.TrimSpace(p.PetName)
	if pet == "" {
		return ErrPetNameRequired
	}
	if len([]rune(guardian)) > MaxNameLength || len([]rune(pet)) > MaxNameLength {
		return ErrNameTooLong
	}
	if p.Weight != nil && *p.Weight < 0 {
		return ErrNegativeWeight
	}
	phone := optional(p.Phone)
	if phone != nil && !phoneRegex.MatchString(*phone) {
		return ErrInvalidPhone
	}

	c.guardianName = guardian
	c.petName = pet
	c.species = optional(p.Species)
	c.weight = p.Weight
	c.memo = optional(p.Memo)
	c.phone = phone
	return nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (c *Customer) Profile() Profile {
	return Profile{
		GuardianName: c.guardianName,
		PetName:      c.petName,
		Species:      c.species,
		Weight:       c.weight,
		Memo:         c.memo,
		Phone:        c.phone,
	}
}

// DisplayName is "pet (guardian)", the form used across booking screens.
func (c *Customer) DisplayName() string {
	return c.petName + " (" + c.guardianName + ")"
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) GuardianName() string { return c.guardianName }
func (c *Customer) PetName() string      { return c.petName }
func (c *Customer) Species() *string     { return c.species }
func (c *Customer) Weight() *float64     { return c.weight }
func (c *Customer) Memo() *string        { return c.memo }
func (c *Customer) Phone() *string       { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
