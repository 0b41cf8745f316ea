package get_working_days

import (
	"context"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

type ScheduleService interface {
	ListDays(ctx context.Context, from, to time.Time) ([]*domain.WorkingDay, error)
	ListUpcomingOpenDays(ctx context.Context, count int) ([]*domain.WorkingDay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
