package book_master

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

// UseCase use case ручной записи мастером.
// В отличие от клиентской записи мастер не привязан к клиентской сетке
// слотов и может ставить запись на любую минуту рабочего дня. Если
// клиента с указанным телефоном нет, он создается на лету.
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

// Execute выполняет use case ручной записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookMaster: service=%d, start=%s",
		req.ServiceID, req.StartTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookMaster: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим или создаем клиента
	client, err := uc.resolveClient(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Получаем услугу
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("BookMaster: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("BookMaster: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("BookMaster: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	candidate := domain.AppointmentInterval(req.StartTime, service.DurationMinutes, uc.policy.GranularityMinutes)

	var result *domain.Appointment

	// 4. Проверяем доступность и создаем запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		day, err := uc.scheduleRepo.GetDayByDate(txCtx, domain.DateOnly(req.StartTime))
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrDayNotFound) {
				uc.logger.Warn("BookMaster: no working day for %s", req.StartTime.Format(domain.DateFormat))
				return ErrDateUnavailable
			}
			uc.logger.Error("BookMaster: failed to get working day: %v", err)
			return fmt.Errorf("%w: failed to get working day: %v", ErrInternal, err)
		}
		if !day.IsOpen {
			uc.logger.Warn("BookMaster: %s is a day off", req.StartTime.Format(domain.DateFormat))
			return ErrDateUnavailable
		}

		if !day.WorkInterval().Contains(candidate) {
			uc.logger.Warn("BookMaster: interval %s - %s does not fit working hours",
				candidate.Start.Format(domain.TimeFormat), candidate.End.Format(domain.TimeFormat))
			return ErrSlotUnavailable
		}

		appointments, err := uc.appointmentRepo.ListInWindow(txCtx, day.WorkStart, day.WorkEnd, false)
		if err != nil {
			uc.logger.Error("BookMaster: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		blocks, err := uc.scheduleRepo.ListActiveBlocksInRange(txCtx, day.WorkStart, day.WorkEnd)
		if err != nil {
			uc.logger.Error("BookMaster: failed to list schedule blocks: %v", err)
			return fmt.Errorf("%w: failed to list schedule blocks: %v", ErrInternal, err)
		}

		if !domain.IsBookable(candidate, appointments, blocks) {
			uc.logger.Warn("BookMaster: slot %s is already occupied", req.StartTime.Format(domain.DateTimeFormat))
			return ErrSlotUnavailable
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:    client.ID,
			ServiceID:   service.ID,
			StartTime:   candidate.Start,
			EndTime:     candidate.End,
			Status:      domain.StatusCreated,
			IsManual:    true,
			MasterNotes: req.MasterNotes,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrTimeConflict) {
				uc.logger.Warn("BookMaster: lost the race for slot %s", req.StartTime.Format(domain.DateTimeFormat))
				uc.conflictCounter.Inc()
				return ErrSlotUnavailable
			}
			uc.logger.Error("BookMaster: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if appointmentRepo.IsSerializationFailure(err) {
			uc.logger.Warn("BookMaster: serialization failure, slot %s contested",
				req.StartTime.Format(domain.DateTimeFormat))
			uc.conflictCounter.Inc()
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	uc.logger.Info("BookMaster: created manual appointment id=%d for client=%d", result.ID, client.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ClientName:      client.FullName(),
		ServiceID:       result.ServiceID,
		ServiceName:     service.Name,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: candidate.Minutes(),
		Status:          string(result.Status),
		MasterNotes:     result.MasterNotes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// resolveClient находит клиента по ID или телефону; клиента с новым
// телефоном создает с временной учетной записью
func (uc *UseCase) resolveClient(ctx context.Context, req *Request) (*domain.Client, error) {
	if req.ClientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("BookMaster: client id=%d not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("BookMaster: failed to get client id=%d: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
		return client, nil
	}

	client, err := uc.clientRepo.GetByPhone(ctx, req.ClientPhone)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("BookMaster: failed to get client by phone: %v", err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// Учетная запись и профиль клиента создаются в одной транзакции:
	// иначе сбой на втором INSERT оставит осиротевшего пользователя,
	// и телефон навсегда упрется в unique constraint
	var created *domain.Client
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		c, err := uc.clientRepo.CreateWithUser(txCtx, req.ClientPhone, req.ClientFirstName, req.ClientLastName)
		if err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		// Конкурентная регистрация того же телефона: клиент уже появился
		if errors.Is(err, clientRepo.ErrDuplicatePhone) {
			winner, err := uc.clientRepo.GetByPhone(ctx, req.ClientPhone)
			if err != nil {
				if errors.Is(err, clientRepo.ErrClientNotFound) {
					uc.logger.Warn("BookMaster: client with phone=%s not found after duplicate", req.ClientPhone)
					return nil, ErrClientNotFound
				}
				uc.logger.Error("BookMaster: failed to get client by phone: %v", err)
				return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
			}
			return winner, nil
		}
		uc.logger.Error("BookMaster: failed to create client: %v", err)
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}

	uc.logger.Info("BookMaster: created client id=%d for phone=%s", created.ID, req.ClientPhone)
	return created, nil
}

func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.ClientID == nil && (req.ClientPhone == "" || req.ClientFirstName == "") {
		return ErrInvalidClientSpec
	}
	return nil
}
