package book_client

import (
	"context"
	"errors"
	"fmt"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	appointmentRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/client"
	scheduleRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/schedule"
)

// UseCase use case клиентской записи на услугу.
// Проверка доступности и вставка выполняются в сериализуемой транзакции;
// остаточные гонки гасит exclusion constraint БД, и оба исхода
// транслируются клиенту одинаково - "слот уже занят".
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	conflictCounter ConflictCounter
	policy          domain.SchedulePolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	conflictCounter ConflictCounter,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		conflictCounter: conflictCounter,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case клиентской записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookClient: phone=%s, service=%d, start=%s",
		req.Phone, req.ServiceID, req.StartTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookClient: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем клиента по телефону
	client, err := uc.clientRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("BookClient: client with phone=%s not found", req.Phone)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("BookClient: failed to get client: %v", err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Получаем услугу
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("BookClient: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("BookClient: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("BookClient: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	candidate := domain.AppointmentInterval(req.StartTime, service.DurationMinutes, uc.policy.GranularityMinutes)

	var result *domain.Appointment

	// 4. Проверяем доступность и создаем запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Рабочий день должен существовать и быть открыт
		day, err := uc.scheduleRepo.GetDayByDate(txCtx, domain.DateOnly(req.StartTime))
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrDayNotFound) {
				uc.logger.Warn("BookClient: no working day for %s", req.StartTime.Format(domain.DateFormat))
				return ErrDateUnavailable
			}
			uc.logger.Error("BookClient: failed to get working day: %v", err)
			return fmt.Errorf("%w: failed to get working day: %v", ErrInternal, err)
		}
		if !day.IsOpen {
			uc.logger.Warn("BookClient: %s is a day off", req.StartTime.Format(domain.DateFormat))
			return ErrDateUnavailable
		}

		// 4.2. Клиентская запись только на сетке от начала рабочего дня
		if !domain.IsOnClientSlotBoundary(req.StartTime, day.WorkStart, uc.policy.ClientSlotStepMinutes) {
			uc.logger.Warn("BookClient: start=%s is off the client slot grid",
				req.StartTime.Format(domain.DateTimeFormat))
			return ErrSlotUnavailable
		}

		// 4.3. Бронь должна целиком помещаться в рабочее окно
		if !day.WorkInterval().Contains(candidate) {
			uc.logger.Warn("BookClient: interval %s - %s does not fit working hours",
				candidate.Start.Format(domain.TimeFormat), candidate.End.Format(domain.TimeFormat))
			return ErrSlotUnavailable
		}

		// 4.4. Проверяем пересечения с записями и блокировками
		appointments, err := uc.appointmentRepo.ListInWindow(txCtx, day.WorkStart, day.WorkEnd, false)
		if err != nil {
			uc.logger.Error("BookClient: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		blocks, err := uc.scheduleRepo.ListActiveBlocksInRange(txCtx, day.WorkStart, day.WorkEnd)
		if err != nil {
			uc.logger.Error("BookClient: failed to list schedule blocks: %v", err)
			return fmt.Errorf("%w: failed to list schedule blocks: %v", ErrInternal, err)
		}

		if !domain.IsBookable(candidate, appointments, blocks) {
			uc.logger.Warn("BookClient: slot %s is already occupied", req.StartTime.Format(domain.DateTimeFormat))
			return ErrSlotUnavailable
		}

		// 4.5. Создаем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:    client.ID,
			ServiceID:   service.ID,
			StartTime:   candidate.Start,
			EndTime:     candidate.End,
			Status:      domain.StatusCreated,
			IsManual:    false,
			ClientNotes: req.ClientNotes,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrTimeConflict) {
				uc.logger.Warn("BookClient: lost the race for slot %s", req.StartTime.Format(domain.DateTimeFormat))
				uc.conflictCounter.Inc()
				return ErrSlotUnavailable
			}
			uc.logger.Error("BookClient: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if appointmentRepo.IsSerializationFailure(err) {
			uc.logger.Warn("BookClient: serialization failure, slot %s contested",
				req.StartTime.Format(domain.DateTimeFormat))
			uc.conflictCounter.Inc()
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	uc.logger.Info("BookClient: created appointment id=%d for client=%d", result.ID, client.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ServiceID:       result.ServiceID,
		ServiceName:     service.Name,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: candidate.Minutes(),
		Status:          string(result.Status),
		ClientNotes:     result.ClientNotes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	return nil
}
