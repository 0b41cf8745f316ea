package add_working_day

import (
	"context"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

type ScheduleService interface {
	AddDay(ctx context.Context, date, workStart, workEnd time.Time, notes *string) (*domain.WorkingDay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
