package deactivate_block

import (
	"context"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

type ScheduleService interface {
	DeactivateBlock(ctx context.Context, id int64) (*domain.ScheduleBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
