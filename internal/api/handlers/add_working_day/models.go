package add_working_day

import (
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

// AddDayRequest HTTP request model
type AddDayRequest struct {
	Date      string  `json:"date"`      // "2026-02-18"
	WorkStart string  `json:"workStart"` // "09:00"
	WorkEnd   string  `json:"workEnd"`   // "18:00"
	Notes     *string `json:"notes,omitempty"`
}

// Parse разбирает дату и собирает времена начала и конца на этой дате
func (r *AddDayRequest) Parse() (date, workStart, workEnd time.Time, err error) {
	date, err = time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return
	}
	workStart, err = combine(date, r.WorkStart)
	if err != nil {
		return
	}
	workEnd, err = combine(date, r.WorkEnd)
	return
}

func combine(date time.Time, value string) (time.Time, error) {
	t, err := time.Parse(domain.TimeFormat, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
