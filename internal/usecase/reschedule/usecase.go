package reschedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	appointmentRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/schedule"
)

// UseCase use case переноса записи на новое время, опционально с новой
// услугой. Сама переносимая запись при проверке пересечений не
// учитывается: перенос внутрь собственного интервала возможен.
// Записи, созданные мастером вручную, не привязаны к клиентской сетке
// и при переносе; остальные переносятся только на слоты сетки.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
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
	txManager TransactionManager,
	conflictCounter ConflictCounter,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		conflictCounter: conflictCounter,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Reschedule: appointment=%d, newStart=%s",
		req.AppointmentID, req.NewStartTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Reschedule: validation failed: %v", err)
		return nil, err
	}

	var (
		result  *domain.Appointment
		service *domain.Service
	)

	// 2. Проверки и перенос в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем запись
		ap, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("Reschedule: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("Reschedule: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Терминальные статусы не переносятся
		if ap.Status == domain.StatusCancelled || ap.Status == domain.StatusCompleted {
			uc.logger.Warn("Reschedule: appointment id=%d in status %s cannot be moved", ap.ID, ap.Status)
			return ErrNotReschedulable
		}

		// 2.3. Определяем услугу: новая или текущая
		serviceID := ap.ServiceID
		if req.NewServiceID != nil {
			serviceID = *req.NewServiceID
		}

		service, err = uc.catalogRepo.GetByID(txCtx, serviceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("Reschedule: service id=%d not found", serviceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("Reschedule: failed to get service id=%d: %v", serviceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if req.NewServiceID != nil && !service.IsActive {
			uc.logger.Warn("Reschedule: service id=%d is inactive", serviceID)
			return ErrServiceInactive
		}

		// 2.4. Рабочий день на новую дату
		day, err := uc.scheduleRepo.GetDayByDate(txCtx, domain.DateOnly(req.NewStartTime))
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrDayNotFound) {
				uc.logger.Warn("Reschedule: no working day for %s", req.NewStartTime.Format(domain.DateFormat))
				return ErrDateUnavailable
			}
			uc.logger.Error("Reschedule: failed to get working day: %v", err)
			return fmt.Errorf("%w: failed to get working day: %v", ErrInternal, err)
		}
		if !day.IsOpen {
			uc.logger.Warn("Reschedule: %s is a day off", req.NewStartTime.Format(domain.DateFormat))
			return ErrDateUnavailable
		}

		// 2.5. Клиентские записи остаются на клиентской сетке
		if !ap.IsManual && !domain.IsOnClientSlotBoundary(req.NewStartTime, day.WorkStart, uc.policy.ClientSlotStepMinutes) {
			uc.logger.Warn("Reschedule: newStart=%s is off the client slot grid",
				req.NewStartTime.Format(domain.DateTimeFormat))
			return ErrSlotUnavailable
		}

		candidate := domain.AppointmentInterval(req.NewStartTime, service.DurationMinutes, uc.policy.GranularityMinutes)

		if !day.WorkInterval().Contains(candidate) {
			uc.logger.Warn("Reschedule: interval %s - %s does not fit working hours",
				candidate.Start.Format(domain.TimeFormat), candidate.End.Format(domain.TimeFormat))
			return ErrSlotUnavailable
		}

		// 2.6. Пересечения считаем без самой переносимой записи
		appointments, err := uc.appointmentRepo.ListInWindow(txCtx, day.WorkStart, day.WorkEnd, false)
		if err != nil {
			uc.logger.Error("Reschedule: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}
		others := appointments[:0:0]
		for _, other := range appointments {
			if other.ID != ap.ID {
				others = append(others, other)
			}
		}

		blocks, err := uc.scheduleRepo.ListActiveBlocksInRange(txCtx, day.WorkStart, day.WorkEnd)
		if err != nil {
			uc.logger.Error("Reschedule: failed to list schedule blocks: %v", err)
			return fmt.Errorf("%w: failed to list schedule blocks: %v", ErrInternal, err)
		}

		if !domain.IsBookable(candidate, others, blocks) {
			uc.logger.Warn("Reschedule: slot %s is already occupied", req.NewStartTime.Format(domain.DateTimeFormat))
			return ErrSlotUnavailable
		}

		// 2.7. Переносим с оптимистичной блокировкой
		if err := uc.appointmentRepo.UpdateSchedule(txCtx, ap.ID, ap.Version, candidate.Start, candidate.End, service.ID); err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrVersionConflict):
				uc.logger.Warn("Reschedule: appointment id=%d was modified concurrently", ap.ID)
				return ErrConcurrentUpdate
			case errors.Is(err, appointmentRepo.ErrTimeConflict):
				uc.logger.Warn("Reschedule: lost the race for slot %s", req.NewStartTime.Format(domain.DateTimeFormat))
				uc.conflictCounter.Inc()
				return ErrSlotUnavailable
			}
			uc.logger.Error("Reschedule: failed to update appointment id=%d: %v", ap.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		ap.StartTime = candidate.Start
		ap.EndTime = candidate.End
		ap.ServiceID = service.ID
		ap.Version++
		result = ap
		return nil
	})
	if err != nil {
		if appointmentRepo.IsSerializationFailure(err) {
			uc.logger.Warn("Reschedule: serialization failure, slot %s contested",
				req.NewStartTime.Format(domain.DateTimeFormat))
			uc.conflictCounter.Inc()
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	uc.logger.Info("Reschedule: appointment id=%d moved to %s",
		result.ID, result.StartTime.Format(domain.DateTimeFormat))

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ServiceID:       result.ServiceID,
		ServiceName:     service.Name,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.Interval().Minutes(),
		Status:          string(result.Status),
		Version:         result.Version,
	}, nil
}

func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}
	if req.NewServiceID != nil && *req.NewServiceID <= 0 {
		return fmt.Errorf("%w: newServiceID must be positive", ErrInvalidInput)
	}
	return nil
}
