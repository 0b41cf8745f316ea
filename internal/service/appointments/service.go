package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	appointmentRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/appointment"
	clientRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/client"
)

// Окна видимости для списков: клиент видит свою историю за месяц,
// мастер - выборки по статусу тоже за месяц
const historyWindowDays = 30

// Service сервис жизненного цикла записей: переходы статусов,
// самостоятельная отмена клиентом, административное удаление, выборки.
// Создание и перенос записей живут в отдельных use case'ах.
type Service struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID получает запись по ID (для мастера)
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	ap, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return ap, nil
}

// ListByDate возвращает все записи на дату, по возрастанию начала (для мастера)
func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	dayStart := domain.DateOnly(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	list, err := s.appointmentRepo.ListInWindow(ctx, dayStart, dayEnd, true)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// ListByStatus возвращает записи в статусе за последний месяц (для мастера)
func (s *Service) ListByStatus(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	since := s.timeProvider.Now().AddDate(0, 0, -historyWindowDays)

	list, err := s.appointmentRepo.ListByStatus(ctx, status, since)
	if err != nil {
		s.logger.Error("ListByStatus: repository error for status=%s: %v", status, err)
		return nil, fmt.Errorf("%w: ListByStatus - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// ListForClient возвращает записи клиента за последний месяц, новые сверху
func (s *Service) ListForClient(ctx context.Context, phone string) ([]*domain.Appointment, error) {
	client, err := s.resolveClient(ctx, phone)
	if err != nil {
		return nil, err
	}

	since := s.timeProvider.Now().AddDate(0, 0, -historyWindowDays)
	list, err := s.appointmentRepo.ListByClient(ctx, client.ID, since)
	if err != nil {
		s.logger.Error("ListForClient: repository error for client=%d: %v", client.ID, err)
		return nil, fmt.Errorf("%w: ListForClient - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// GetForClient получает запись клиента с проверкой владения
func (s *Service) GetForClient(ctx context.Context, phone string, appointmentID int64) (*domain.Appointment, error) {
	client, err := s.resolveClient(ctx, phone)
	if err != nil {
		return nil, err
	}

	ap, err := s.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.ClientID != client.ID {
		s.logger.Warn("GetForClient: appointment id=%d belongs to client=%d, requested by client=%d",
			appointmentID, ap.ClientID, client.ID)
		return nil, ErrNotOwner
	}

	return ap, nil
}

// CancelAsClient отменяет запись силами клиента.
// Разрешено только из статусов CREATED и PENDING; после подтверждения
// мастером клиент договаривается об отмене лично.
func (s *Service) CancelAsClient(ctx context.Context, phone string, appointmentID int64) (*domain.Appointment, error) {
	s.logger.Info("CancelAsClient: phone=%s, appointment=%d", phone, appointmentID)

	var cancelled *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		ap, err := s.GetForClient(txCtx, phone, appointmentID)
		if err != nil {
			return err
		}

		if !ap.CanBeCancelledByClient() {
			s.logger.Warn("CancelAsClient: appointment id=%d in status %s cannot be cancelled", appointmentID, ap.Status)
			return ErrCancelNotAllowed
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, ap.ID, ap.Version, domain.StatusCancelled, nil); err != nil {
			if errors.Is(err, appointmentRepo.ErrVersionConflict) {
				return ErrConcurrentUpdate
			}
			return fmt.Errorf("%w: CancelAsClient - update status: %v", ErrInternal, err)
		}

		ap.Status = domain.StatusCancelled
		ap.Version++
		cancelled = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CancelAsClient: appointment id=%d cancelled by client", appointmentID)
	return cancelled, nil
}

// SetStatus переводит запись в новый статус (для мастера).
// Допустимость перехода проверяет машина статусов домена.
func (s *Service) SetStatus(ctx context.Context, appointmentID int64, newStatus domain.AppointmentStatus, masterNotes *string) (*domain.Appointment, error) {
	s.logger.Info("SetStatus: appointment=%d -> %s", appointmentID, newStatus)

	var updated *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		ap, err := s.GetByID(txCtx, appointmentID)
		if err != nil {
			return err
		}

		if err := domain.ValidateTransition(ap.Status, newStatus); err != nil {
			s.logger.Warn("SetStatus: invalid transition %s -> %s for appointment id=%d",
				ap.Status, newStatus, appointmentID)
			return err
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, ap.ID, ap.Version, newStatus, masterNotes); err != nil {
			if errors.Is(err, appointmentRepo.ErrVersionConflict) {
				return ErrConcurrentUpdate
			}
			return fmt.Errorf("%w: SetStatus - update status: %v", ErrInternal, err)
		}

		ap.Status = newStatus
		ap.Version++
		if masterNotes != nil {
			ap.MasterNotes = masterNotes
		}
		updated = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetStatus: appointment id=%d moved to %s", appointmentID, newStatus)
	return updated, nil
}

// Delete безусловно удаляет запись (административный обход машины статусов)
func (s *Service) Delete(ctx context.Context, appointmentID int64) error {
	s.logger.Info("Delete: appointment=%d", appointmentID)

	if err := s.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", appointmentID)
	return nil
}

func (s *Service) resolveClient(ctx context.Context, phone string) (*domain.Client, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("resolveClient: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: resolve client: %v", ErrInternal, err)
	}
	return client, nil
}
