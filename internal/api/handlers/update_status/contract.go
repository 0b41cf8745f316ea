package update_status

import (
	"context"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

type AppointmentsService interface {
	SetStatus(ctx context.Context, appointmentID int64, newStatus domain.AppointmentStatus, masterNotes *string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
