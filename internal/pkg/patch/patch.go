package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Optional is used for nullable columns: a nil patch keeps current,
// a non-nil patch replaces it.
func Optional[T any](patch *T, current *T) *T {
	if patch != nil {
		v := *patch
		return &v
	}
	return current
}
