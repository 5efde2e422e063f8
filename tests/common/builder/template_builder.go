//go:build unit || e2e

package builder

import (
	"grooming-salon/internal/domain/notification"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

type TemplateBuilder struct {
	ID       uuid.UUID
	Name     string
	Template string
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		ID:       uuid.New(),
		Name:     "예약 알림",
		Template: "{guardian_name}님, {date} {time} {pet_name} {services} 예약입니다.",
	}
}

func (t *TemplateBuilder) With(mutate func(*TemplateBuilder)) *TemplateBuilder {
	mutate(t)
	return t
}

func (t *TemplateBuilder) BuildDomain() *notification.Template {
	return notification.Reconstruct(t.ID, t.Name, t.Template, FixedNow, FixedNow)
}

func (t *TemplateBuilder) BuildView() queries.TemplateView {
	return queries.TemplateView{
		ID:        t.ID,
		Name:      t.Name,
		Template:  t.Template,
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
}

func (t *TemplateBuilder) BuildDTO() reqdto.TemplateRequest {
	return reqdto.TemplateRequest{Name: t.Name, Template: t.Template}
}
