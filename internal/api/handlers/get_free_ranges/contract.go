package get_free_ranges

import (
	"context"

	getFreeRanges "github.com/frolovsnails/FSN-BookingService/internal/usecase/get_free_ranges"
)

type GetFreeRangesUseCase interface {
	Execute(ctx context.Context, req *getFreeRanges.Request) (*getFreeRanges.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
