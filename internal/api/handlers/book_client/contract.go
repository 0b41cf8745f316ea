package book_client

import (
	"context"

	bookClient "github.com/frolovsnails/FSN-BookingService/internal/usecase/book_client"
)

type BookClientUseCase interface {
	Execute(ctx context.Context, req *bookClient.Request) (*bookClient.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
