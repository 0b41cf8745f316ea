package book_master

import (
	"context"

	bookMaster "github.com/frolovsnails/FSN-BookingService/internal/usecase/book_master"
)

type BookMasterUseCase interface {
	Execute(ctx context.Context, req *bookMaster.Request) (*bookMaster.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
