package reschedule_appointment

import (
	"context"

	"github.com/frolovsnails/FSN-BookingService/internal/usecase/reschedule"
)

type RescheduleUseCase interface {
	Execute(ctx context.Context, req *reschedule.Request) (*reschedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
