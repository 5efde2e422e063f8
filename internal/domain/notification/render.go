package notification

import (
	"fmt"
	"strings"
	"time"
)

const (
	VarDate         = "{date}"
	VarTime         = "{time}"
	VarPetName      = "{pet_name}"
	VarGuardianName = "{guardian_name}"
	VarServices     = "{services}"
	VarPhone        = "{phone}"
	VarMemo         = "{memo}"
)

// Placeholders in the order the template editor offers them.
var Placeholders = []string{VarDate, VarTime, VarPetName, VarGuardianName, VarServices, VarPhone, VarMemo}

type Variables struct {
	Date         string
	Time         string
	PetName      string
	GuardianName string
	Services     string
	Phone        string
	Memo         string
}

// Render substitutes every known placeholder. Unknown braces are left alone.
func Render(body string, v Variables) string {
	r := strings.NewReplacer(
		VarDate, v.Date,
		VarTime, v.Time,
		VarPetName, v.PetName,
		VarGuardianName, v.GuardianName,
		VarServices, v.Services,
		VarPhone, v.Phone,
		VarMemo, v.Memo,
	)
	return r.Replace(body)
}

var weekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// BookingContext is what a reminder knows about one appointment.
type BookingContext struct {
	Start        time.Time
	PetName      string
	GuardianName string
	ServiceNames []string
	Phone        *string
	Memo         *string
}

// VariablesFor formats dates the way the salon writes them, e.g. "2024년 1월 2일 (화)" and "10:00".
func VariablesFor(b BookingContext, loc *time.Location) Variables {
	start := b.Start.In(loc)
	v := Variables{
		Date:         fmt.Sprintf("%d년 %d월 %d일 (%s)", start.Year(), int(start.Month()), start.Day(), weekdays[start.Weekday()]),
		Time:         start.Format("15:04"),
		PetName:      b.PetName,
		GuardianName: b.GuardianName,
		Services:     strings.Join(b.ServiceNames, ", "),
	}
	if b.Phone != nil {
		v.Phone = *b.Phone
	}
	if b.Memo != nil {
		v.Memo = *b.Memo
	}
	return v
}
