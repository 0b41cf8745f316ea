package get_appointments

import (
	"context"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

type AppointmentsService interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	ListByStatus(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
