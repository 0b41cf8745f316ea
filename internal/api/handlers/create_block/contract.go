package create_block

import (
	"context"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

type ScheduleService interface {
	CreateBlock(ctx context.Context, start, end time.Time, reason string, notes *string) (*domain.ScheduleBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
