package errs

import "errors"

// Cross-layer categories. Use cases mark their own sentinels with one of these
// so the HTTP layer can pick a status without knowing every use case error.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("unauthenticated")
)
