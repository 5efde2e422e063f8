package booking

import (
	"regexp"
	"strings"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Color is the calendar display color as #RRGGBB.
type Color string

const DefaultColor Color = "#8B5CF6"

// Palette offered by the booking form.
var Palette = []Color{
	"#8B5CF6",
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#EC4899",
	"#06B6D4",
	"#F97316",
}

var colorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// NewColor accepts any #RRGGBB value; an empty string yields DefaultColor.
func NewColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultColor, nil
	}
	if !colorRegex.MatchString(s) {
		return "", ErrInvalidColor
	}
	return Color(strings.ToUpper(s)), nil
}

func (c Color) String() string {
	return string(c)
}
