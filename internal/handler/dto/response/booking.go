package response

import (
	"time"

	"grooming-salon/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingCustomerResponse struct {
	ID           uuid.UUID `json:"id"`
	GuardianName string    `json:"guardian_name"`
	PetName      string    `json:"pet_name"`
	Phone        *string   `json:"phone"`
}

type BookingServiceResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	DurationHours float64   `json:"duration_hours"`
	Price         *int64    `json:"price"`
}

type BookingResponse struct {
	ID            uuid.UUID                `json:"id"`
	CustomerID    uuid.UUID                `json:"customer_id"`
	ServiceIDs    []uuid.UUID              `json:"service_ids"`
	StartTime     time.Time                `json:"start_time"`
	EndTime       time.Time                `json:"end_time"`
	DurationHours float64                  `json:"duration_hours"`
	Status        string                   `json:"status"`
	TotalPrice    *int64                   `json:"total_price"`
	Memo          *string                  `json:"memo"`
	Color         string                   `json:"color"`
	CreatedBy     *uuid.UUID               `json:"created_by"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
	Customer      BookingCustomerResponse  `json:"customer"`
	Services      []BookingServiceResponse `json:"services"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	res := copyFrom[BookingResponse](v)
	res.DurationHours = v.EndTime.Sub(v.StartTime).Hours()
	res.Customer = copyFrom[BookingCustomerResponse](&v.Customer)
	res.Services = copyAll[BookingServiceResponse](v.Services)
	return res
}

func FromBookingViews(vs []*queries.BookingView) []BookingResponse {
	res := make([]BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}

type SlotResponse struct {
	Hour        int              `json:"hour"`
	Start       time.Time        `json:"start"`
	End         time.Time        `json:"end"`
	Booking     *BookingResponse `json:"booking"`
	Occupied    bool             `json:"occupied"`
	OccupantIDs []uuid.UUID      `json:"occupant_ids"`
}

type DayResponse struct {
	Date      string                 `json:"date"`
	Bookings  []BookingResponse      `json:"bookings"`
	Slots     []SlotResponse         `json:"slots"`
	FreeHours []int                  `json:"free_hours"`
	Conflicts []queries.ConflictView `json:"conflicts"`
}

func FromDayView(v *queries.DayView) DayResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{
			Hour:        s.Hour,
			Start:       s.Start,
			End:         s.End,
			Occupied:    s.Occupied,
			OccupantIDs: s.OccupantIDs,
		}
		if s.Booking != nil {
			b := FromBookingView(s.Booking)
			slots[i].Booking = &b
		}
	}
	return DayResponse{
		Date:      v.Date,
		Bookings:  FromBookingViews(v.Bookings),
		Slots:     slots,
		FreeHours: v.FreeHours,
		Conflicts: v.Conflicts,
	}
}

type DayCellResponse struct {
	Date     string            `json:"date"`
	InMonth  bool              `json:"in_month"`
	Bookings []BookingResponse `json:"bookings"`
}

type MonthGridResponse struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Weeks [][]DayCellResponse `json:"weeks"`
}

func FromMonthGridView(v *queries.MonthGridView) MonthGridResponse {
	weeks := make([][]DayCellResponse, len(v.Weeks))
	for i, week := range v.Weeks {
		weeks[i] = make([]DayCellResponse, len(week))
		for j, cell := range week {
			weeks[i][j] = DayCellResponse{
				Date:     cell.Date,
				InMonth:  cell.InMonth,
				Bookings: FromBookingViews(cell.Bookings),
			}
		}
	}
	return MonthGridResponse{Year: v.Year, Month: v.Month, Weeks: weeks}
}

type QuoteResponse struct {
	DurationHours float64                  `json:"duration_hours"`
	StartTime     time.Time                `json:"start_time"`
	EndTime       time.Time                `json:"end_time"`
	TotalPrice    int64                    `json:"total_price"`
	Services      []BookingServiceResponse `json:"services"`
}

func FromQuoteView(v *queries.QuoteView) QuoteResponse {
	res := copyFrom[QuoteResponse](v)
	res.Services = copyAll[BookingServiceResponse](v.Services)
	return res
}
