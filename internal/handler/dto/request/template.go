package request

import "github.com/google/uuid"

type TemplateRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Template string `json:"template" binding:"required,max=2000"`
}

type PreviewRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}
