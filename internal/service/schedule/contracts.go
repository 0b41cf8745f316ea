package schedule

import (
	"context"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория календаря
type ScheduleRepository interface {
	CreateDay(ctx context.Context, day *domain.WorkingDay) (*domain.WorkingDay, error)
	GetDayByID(ctx context.Context, id int64) (*domain.WorkingDay, error)
	GetDayByDate(ctx context.Context, date time.Time) (*domain.WorkingDay, error)
	UpdateDay(ctx context.Context, day *domain.WorkingDay) error
	DeleteDay(ctx context.Context, id int64) error
	ListDays(ctx context.Context, from, to time.Time) ([]*domain.WorkingDay, error)
	ListUpcomingOpenDays(ctx context.Context, from time.Time, limit int) ([]*domain.WorkingDay, error)
	CreateBlock(ctx context.Context, block *domain.ScheduleBlock) (*domain.ScheduleBlock, error)
	GetBlockByID(ctx context.Context, id int64) (*domain.ScheduleBlock, error)
	DeactivateBlock(ctx context.Context, id int64) error
	ListActiveBlocksInRange(ctx context.Context, from, to time.Time) ([]*domain.ScheduleBlock, error)
}

// AppointmentRepository интерфейс репозитория записей
// (нужен для проверки занятости дня перед удалением)
type AppointmentRepository interface {
	CountActiveInWindow(ctx context.Context, from, to time.Time) (int, error)
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
