package get_my_appointments

import (
	"context"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

type AppointmentsService interface {
	ListForClient(ctx context.Context, phone string) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
