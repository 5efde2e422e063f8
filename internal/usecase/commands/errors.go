package commands

import (
	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/pkg/errs"
)

var (
	ErrBookingNotFound  = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrCustomerNotFound = errs.Mark(errs.New("customer not found"), errs.ErrNotFound)
	ErrServiceNotFound  = errs.Mark(errs.New("service not found"), errs.ErrNotFound)
	ErrTemplateNotFound = errs.Mark(errs.New("template not found"), errs.ErrNotFound)
	ErrUserNotFound     = errs.Mark(errs.New("user not found"), errs.ErrNotFound)

	ErrBookingConflict     = errs.Mark(booking.ErrBookingConflict, errs.ErrConflict)
	ErrServiceNameTaken    = errs.Mark(errs.New("service name already exists"), errs.ErrConflict)
	ErrTemplateNameTaken   = errs.Mark(errs.New("template name already exists"), errs.ErrConflict)
	ErrEmailTaken          = errs.Mark(errs.New("email already registered"), errs.ErrConflict)
	ErrCustomerHasBookings = errs.Mark(errs.New("customer still has bookings"), errs.ErrConflict)

	ErrInvalidCredentials = errs.Mark(errs.New("invalid email or password"), errs.ErrUnauthenticated)
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrCannotDeleteSelf   = errs.Mark(errs.New("cannot delete your own account"), errs.ErrPermissionDenied)
)

// invalid marks a domain rule violation as a validation failure.
func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

// repoErr replaces not-found and duplicate repository errors with the given
// sentinels and wraps everything else.
func repoErr(err error, notFound, duplicate error, msg string) error {
	switch {
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return notFound
	case duplicate != nil && infra.IsKind(err, infra.KindDuplicateKey):
		return duplicate
	default:
		return errs.Wrap(err, msg)
	}
}
