package request

type ServiceRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	DurationHours float64 `json:"duration_hours" binding:"required,gt=0"`
	Price         *int64  `json:"price" binding:"omitempty,min=0"`
	Tag           string  `json:"tag" binding:"omitempty,oneof=bath partial-groom face-trim"`
}
