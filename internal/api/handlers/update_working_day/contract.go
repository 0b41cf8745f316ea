package update_working_day

import (
	"context"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

type ScheduleService interface {
	UpdateDay(ctx context.Context, id int64, workStart, workEnd time.Time, isOpen bool, notes *string) (*domain.WorkingDay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
