package reschedule

import "time"

// Request модель запроса переноса записи.
// NewServiceID опционально меняет услугу вместе со временем.
type Request struct {
	AppointmentID int64
	NewStartTime  time.Time
	NewServiceID  *int64
}

// Response модель ответа с перенесенной записью
type Response struct {
	ID              int64
	ClientID        int64
	ServiceID       int64
	ServiceName     string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Status          string
	Version         int64
}
