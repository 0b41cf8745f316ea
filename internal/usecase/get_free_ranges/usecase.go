package get_free_ranges

import (
	"context"
	"errors"
	"fmt"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	scheduleRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/schedule"
)

// UseCase use case поиска свободных промежутков на дату.
// Предназначен для мастера: показывает весь свободный резерв дня
// без привязки к клиентской сетке слотов.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		logger:          logger,
	}
}

// Execute выполняет use case поиска свободных промежутков
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeRanges: date=%s, minDuration=%d", req.Date.Format(domain.DateFormat), req.MinDurationMinutes)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.MinDurationMinutes < 0 {
		return nil, fmt.Errorf("%w: minDurationMinutes must not be negative", ErrInvalidInput)
	}

	// 2. Получаем рабочий день
	day, err := uc.scheduleRepo.GetDayByDate(ctx, req.Date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			uc.logger.Warn("GetFreeRanges: no working day for %s", req.Date.Format(domain.DateFormat))
			return nil, ErrDateUnavailable
		}
		uc.logger.Error("GetFreeRanges: failed to get working day: %v", err)
		return nil, fmt.Errorf("%w: failed to get working day: %v", ErrInternal, err)
	}
	if !day.IsOpen {
		uc.logger.Warn("GetFreeRanges: %s is a day off", req.Date.Format(domain.DateFormat))
		return nil, ErrDateUnavailable
	}

	// 3. Получаем занятость на рабочее окно дня
	appointments, err := uc.appointmentRepo.ListInWindow(ctx, day.WorkStart, day.WorkEnd, false)
	if err != nil {
		uc.logger.Error("GetFreeRanges: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.scheduleRepo.ListActiveBlocksInRange(ctx, day.WorkStart, day.WorkEnd)
	if err != nil {
		uc.logger.Error("GetFreeRanges: failed to list schedule blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedule blocks: %v", ErrInternal, err)
	}

	// 4. Ищем свободные промежутки разметающим проходом
	ranges := domain.FindFreeRanges(day.WorkInterval(), appointments, blocks, req.MinDurationMinutes)

	result := make([]FreeRange, 0, len(ranges))
	for _, r := range ranges {
		result = append(result, FreeRange{
			StartTime:       r.Start,
			EndTime:         r.End,
			DurationMinutes: r.Minutes(),
		})
	}

	uc.logger.Info("GetFreeRanges: %d free ranges on %s", len(result), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		WorkStart:  day.WorkStart,
		WorkEnd:    day.WorkEnd,
		FreeRanges: result,
	}, nil
}
