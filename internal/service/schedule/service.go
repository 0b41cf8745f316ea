package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	scheduleRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/schedule"
)

// Service сервис управления календарем: рабочие дни и блокировки.
// Все изменения календаря идут только через него, чтобы инварианты
// (уникальность даты, запрет удаления занятого дня) применялись централизованно.
type Service struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// AddDay добавляет рабочий день
func (s *Service) AddDay(ctx context.Context, date, workStart, workEnd time.Time, notes *string) (*domain.WorkingDay, error) {
	s.logger.Info("AddDay: date=%s, hours=%s-%s",
		date.Format(domain.DateFormat), workStart.Format(domain.TimeFormat), workEnd.Format(domain.TimeFormat))

	if _, err := domain.NewTimeInterval(workStart, workEnd); err != nil {
		s.logger.Warn("AddDay: invalid hours for date=%s", date.Format(domain.DateFormat))
		return nil, ErrInvalidHours
	}

	day := &domain.WorkingDay{
		Date:      date,
		WorkStart: workStart,
		WorkEnd:   workEnd,
		IsOpen:    true,
		Notes:     notes,
	}

	created, err := s.scheduleRepo.CreateDay(ctx, day)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDuplicateDay) {
			s.logger.Warn("AddDay: day already exists for date=%s", date.Format(domain.DateFormat))
			return nil, ErrDuplicateDay
		}
		s.logger.Error("AddDay: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: AddDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddDay: created working day id=%d", created.ID)
	return created, nil
}

// UpdateDay обновляет границы рабочего времени, доступность и заметки дня
func (s *Service) UpdateDay(ctx context.Context, id int64, workStart, workEnd time.Time, isOpen bool, notes *string) (*domain.WorkingDay, error) {
	s.logger.Info("UpdateDay: id=%d, hours=%s-%s, open=%t",
		id, workStart.Format(domain.TimeFormat), workEnd.Format(domain.TimeFormat), isOpen)

	if _, err := domain.NewTimeInterval(workStart, workEnd); err != nil {
		return nil, ErrInvalidHours
	}

	day, err := s.scheduleRepo.GetDayByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			s.logger.Warn("UpdateDay: day id=%d not found", id)
			return nil, ErrDayNotFound
		}
		s.logger.Error("UpdateDay: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
	}

	day.WorkStart = workStart
	day.WorkEnd = workEnd
	day.IsOpen = isOpen
	day.Notes = notes

	if err := s.scheduleRepo.UpdateDay(ctx, day); err != nil {
		s.logger.Error("UpdateDay: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDay: updated working day id=%d", id)
	return day, nil
}

// DeleteDay удаляет рабочий день.
// День с неотмененными записями удалить нельзя: проверка и удаление
// выполняются в одной транзакции.
func (s *Service) DeleteDay(ctx context.Context, id int64) error {
	s.logger.Info("DeleteDay: id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		day, err := s.scheduleRepo.GetDayByID(txCtx, id)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrDayNotFound) {
				return ErrDayNotFound
			}
			return fmt.Errorf("%w: DeleteDay - get day: %v", ErrInternal, err)
		}

		dayStart := domain.DateOnly(day.Date)
		dayEnd := dayStart.AddDate(0, 0, 1)

		// Отмененные записи день не держат
		count, err := s.appointmentRepo.CountActiveInWindow(txCtx, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("%w: DeleteDay - count appointments: %v", ErrInternal, err)
		}
		if count > 0 {
			s.logger.Warn("DeleteDay: day id=%d has %d active appointments", id, count)
			return ErrDayInUse
		}

		return s.scheduleRepo.DeleteDay(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, ErrDayNotFound) || errors.Is(err, ErrDayInUse) {
			return err
		}
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			return ErrDayNotFound
		}
		s.logger.Error("DeleteDay: failed for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteDay: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDay: deleted working day id=%d", id)
	return nil
}

// ListDays возвращает рабочие дни в диапазоне дат (для календаря мастера)
func (s *Service) ListDays(ctx context.Context, from, to time.Time) ([]*domain.WorkingDay, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before start", ErrInvalidInput)
	}

	days, err := s.scheduleRepo.ListDays(ctx, from, to)
	if err != nil {
		s.logger.Error("ListDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDays - repository error: %v", ErrInternal, err)
	}

	return days, nil
}

// ListUpcomingOpenDays возвращает ближайшие открытые дни (для клиентов)
func (s *Service) ListUpcomingOpenDays(ctx context.Context, count int) ([]*domain.WorkingDay, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", ErrInvalidInput)
	}

	days, err := s.scheduleRepo.ListUpcomingOpenDays(ctx, s.timeProvider.Now(), count)
	if err != nil {
		s.logger.Error("ListUpcomingOpenDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcomingOpenDays - repository error: %v", ErrInternal, err)
	}

	return days, nil
}

// CreateBlock блокирует интервал времени (отпуск, больничный и т.д.)
func (s *Service) CreateBlock(ctx context.Context, start, end time.Time, reason string, notes *string) (*domain.ScheduleBlock, error) {
	s.logger.Info("CreateBlock: %s - %s, reason=%s",
		start.Format(domain.DateTimeFormat), end.Format(domain.DateTimeFormat), reason)

	if _, err := domain.NewTimeInterval(start, end); err != nil {
		return nil, fmt.Errorf("%w: block start must be before end", ErrInvalidInput)
	}

	blockReason, err := domain.ParseBlockReason(reason)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	block := &domain.ScheduleBlock{
		StartTime: start,
		EndTime:   end,
		Reason:    blockReason,
		Notes:     notes,
		IsActive:  true,
	}

	created, err := s.scheduleRepo.CreateBlock(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: created block id=%d", created.ID)
	return created, nil
}

// DeactivateBlock снимает блокировку, освобождая время для записи
func (s *Service) DeactivateBlock(ctx context.Context, id int64) (*domain.ScheduleBlock, error) {
	s.logger.Info("DeactivateBlock: id=%d", id)

	if err := s.scheduleRepo.DeactivateBlock(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockNotFound) {
			s.logger.Warn("DeactivateBlock: block id=%d not found", id)
			return nil, ErrBlockNotFound
		}
		s.logger.Error("DeactivateBlock: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: DeactivateBlock - repository error: %v", ErrInternal, err)
	}

	block, err := s.scheduleRepo.GetBlockByID(ctx, id)
	if err != nil {
		s.logger.Error("DeactivateBlock: reload block id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: DeactivateBlock - reload block: %v", ErrInternal, err)
	}

	s.logger.Info("DeactivateBlock: block id=%d deactivated", id)
	return block, nil
}
