package appointments

import (
	"context"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListInWindow(ctx context.Context, from, to time.Time, includeCancelled bool) ([]*domain.Appointment, error)
	ListByClient(ctx context.Context, clientID int64, since time.Time) ([]*domain.Appointment, error)
	ListByStatus(ctx context.Context, status domain.AppointmentStatus, since time.Time) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id, version int64, status domain.AppointmentStatus, masterNotes *string) error
	Delete(ctx context.Context, id int64) error
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
