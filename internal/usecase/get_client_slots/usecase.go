package get_client_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	catalogRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/schedule"
)

// UseCase use case получения доступных клиентских слотов на дату.
// Клиент видит только старты на сетке с фиксированным шагом от начала
// рабочего дня; мастер этим ограничением не связан.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
	policy          domain.SchedulePolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetClientSlots: date=%s, service=%d", req.Date.Format(domain.DateFormat), req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetClientSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetClientSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetClientSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetClientSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 3. Получаем рабочий день
	day, err := uc.scheduleRepo.GetDayByDate(ctx, req.Date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			uc.logger.Warn("GetClientSlots: no working day for %s", req.Date.Format(domain.DateFormat))
			return nil, ErrDateUnavailable
		}
		uc.logger.Error("GetClientSlots: failed to get working day: %v", err)
		return nil, fmt.Errorf("%w: failed to get working day: %v", ErrInternal, err)
	}
	if !day.IsOpen {
		uc.logger.Warn("GetClientSlots: %s is a day off", req.Date.Format(domain.DateFormat))
		return nil, ErrDateUnavailable
	}

	// 4. Получаем занятость на рабочее окно дня
	appointments, err := uc.appointmentRepo.ListInWindow(ctx, day.WorkStart, day.WorkEnd, false)
	if err != nil {
		uc.logger.Error("GetClientSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.scheduleRepo.ListActiveBlocksInRange(ctx, day.WorkStart, day.WorkEnd)
	if err != nil {
		uc.logger.Error("GetClientSlots: failed to list schedule blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedule blocks: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты по клиентской сетке
	duration := domain.RoundDurationMinutes(service.DurationMinutes, uc.policy.GranularityMinutes)
	slots := generateSlots(day.WorkInterval(), duration, uc.policy.ClientSlotStepMinutes, appointments, blocks)

	uc.logger.Info("GetClientSlots: %d slots available on %s for service=%d",
		len(slots), req.Date.Format(domain.DateFormat), req.ServiceID)

	return &Response{
		Date:            req.Date,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

// generateSlots перебирает старты по сетке от начала рабочего дня и
// оставляет те, где бронь целиком помещается в рабочее окно и не
// пересекается с занятостью
func generateSlots(
	work domain.TimeInterval,
	durationMinutes int,
	stepMinutes int,
	appointments []*domain.Appointment,
	blocks []*domain.ScheduleBlock,
) []Slot {
	slots := make([]Slot, 0)
	step := time.Duration(stepMinutes) * time.Minute

	for start := work.Start; start.Before(work.End); start = start.Add(step) {
		candidate := domain.TimeInterval{
			Start: start,
			End:   start.Add(time.Duration(durationMinutes) * time.Minute),
		}
		if candidate.End.After(work.End) {
			break
		}
		if !domain.IsBookable(candidate, appointments, blocks) {
			continue
		}
		slots = append(slots, Slot{StartTime: candidate.Start, EndTime: candidate.End})
	}

	return slots
}

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	return nil
}
