package cancel_appointment

import (
	"context"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

type AppointmentsService interface {
	CancelAsClient(ctx context.Context, phone string, appointmentID int64) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
