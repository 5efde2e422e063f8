package notification

import (
	"strings"
	"time"

	"grooming-salon/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errs.New("template name is required")
	ErrEmptyTemplate = errs.New("template body is required")
	ErrNameTooLong   = errs.New("template name is too long")
)

const MaxNameLength = 100

type Template struct {
	id        uuid.UUID
	name      string
	body      string
	createdAt time.Time
	updatedAt time.Time
}

func NewTemplate(name, body string, now time.Time) (*Template, error) {
	t := &Template{id: uuid.New(), createdAt: now, updatedAt: now}
	if err := t.set(name, body); err != nil {
		return nil, err
	}
	return t, nil
}

func Reconstruct(id uuid.UUID, name, body string, createdAt, updatedAt time.Time) *Template {
	return &Template{id: id, name: name, body: body, createdAt: createdAt, updatedAt: updatedAt}
}

func (t *Template) Update(name, body string, now time.Time) error {
	if err := t.set(name, body); err != nil {
		return err
	}
	t.updatedAt = now
	return nil
}

func (t *Template) set(name, body string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return ErrNameTooLong
	}
	if strings.TrimSpace(body) == "" {
		return ErrEmptyTemplate
	}
	t.name = name
	t.body = body
	return nil
}

func (t *Template) Render(v Variables) string {
	return Render(t.body, v)
}

func (t *Template) ID() uuid.UUID        { return t.id }
func (t *Template) Name() string         { return t.name }
func (t *Template) Body() string         { return t.body }
func (t *Template) CreatedAt() time.Time { return t.createdAt }
func (t *Template) UpdatedAt() time.Time { return t.updatedAt }
