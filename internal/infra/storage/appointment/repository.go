package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	"github.com/frolovsnails/FSN-BookingService/pkg/psqlbuilder"
	"github.com/frolovsnails/FSN-BookingService/pkg/txmanager"
)

// Колонки записи вместе с денормализованными данными клиента и услуги.
// Каждое чтение тянет клиента и услугу одним запросом - отдельных
// догрузок по id нет.
var appointmentColumns = []string{
	"a.id",
	"a.client_id",
	"a.service_id",
	"a.start_time",
	"a.end_time",
	"a.status",
	"a.is_manual",
	"a.client_notes",
	"a.master_notes",
	"a.version",
	"a.created_at",
	"a.updated_at",
	"c.first_name",
	"c.last_name",
	"u.phone",
	"s.name AS service_name",
}

// Repository репозиторий записей
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись.
// Exclusion constraint в БД - последний рубеж защиты от двойного
// бронирования: если между проверкой доступности и INSERT'ом слот занял
// конкурентный запрос, вернется ErrTimeConflict.
func (r *Repository) Create(ctx context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"service_id",
			"start_time",
			"end_time",
			"status",
			"is_manual",
			"client_notes",
		).
		Values(
			ap.ClientID,
			ap.ServiceID,
			ap.StartTime,
			ap.EndTime,
			ap.Status,
			ap.IsManual,
			ap.ClientNotes,
		).
		Suffix("RETURNING id, version, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ap.ID,
		&ap.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if isWriteConflict(err) {
			return nil, ErrTimeConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ap.CreatedAt = createdAt.Time
	ap.UpdatedAt = updatedAt.Time

	return ap, nil
}

// GetByID получает запись по ID вместе с данными клиента и услуги
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithJoins().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	ap, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return ap, nil
}

// ListInWindow возвращает записи, пересекающие окно [from, to),
// отсортированные по началу. includeCancelled управляет включением
// отмененных записей.
func (r *Repository) ListInWindow(ctx context.Context, from, to time.Time, includeCancelled bool) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := r.selectWithJoins().
		Where(squirrel.Lt{"a.start_time": to}).
		Where(squirrel.Gt{"a.end_time": from}).
		OrderBy("a.start_time")

	if !includeCancelled {
		builder = builder.Where(squirrel.NotEq{"a.status": domain.StatusCancelled})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListByClient возвращает записи клиента начиная с указанного времени,
// новые сверху
func (r *Repository) ListByClient(ctx context.Context, clientID int64, since time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithJoins().
		Where(squirrel.Eq{"a.client_id": clientID}).
		Where(squirrel.GtOrEq{"a.start_time": since}).
		OrderBy("a.start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListByStatus возвращает записи в указанном статусе начиная с указанного времени
func (r *Repository) ListByStatus(ctx context.Context, status domain.AppointmentStatus, since time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithJoins().
		Where(squirrel.Eq{"a.status": status}).
		Where(squirrel.GtOrEq{"a.start_time": since}).
		OrderBy("a.start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CountActiveInWindow считает неотмененные записи, пересекающие окно.
// Используется при удалении рабочего дня.
func (r *Repository) CountActiveInWindow(ctx context.Context, from, to time.Time) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments a").
		Where(squirrel.Lt{"a.start_time": to}).
		Where(squirrel.Gt{"a.end_time": from}).
		Where(squirrel.NotEq{"a.status": domain.StatusCancelled}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveInWindow - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveInWindow - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateSchedule переносит запись на новый интервал (и опционально новую
// услугу) с оптимистичной блокировкой: UPDATE проходит только если version
// не изменился с момента чтения. Конкурентный перенос/отмена вернет
// ErrVersionConflict, пересечение с другой записью - ErrTimeConflict.
func (r *Repository) UpdateSchedule(ctx context.Context, id, version int64, start, end time.Time, serviceID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("start_time", start).
		Set("end_time", end).
		Set("service_id", serviceID).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "version": version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isWriteConflict(err) {
			return ErrTimeConflict
		}
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}

	return nil
}

// UpdateStatus меняет статус записи с оптимистичной блокировкой.
// masterNotes перезаписываются, если переданы.
func (r *Repository) UpdateStatus(ctx context.Context, id, version int64, status domain.AppointmentStatus, masterNotes *string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "version": version})

	if masterNotes != nil {
		builder = builder.Set("master_notes", *masterNotes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}

	return nil
}

// Delete безусловно удаляет запись из хранилища.
// Это административный обход машины статусов, не переход.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) selectWithJoins() squirrel.SelectBuilder {
	return psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("clients c ON c.id = a.client_id").
		Join("users u ON u.id = c.user_id").
		Join("services s ON s.id = a.service_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		ap                   domain.Appointment
		firstName, lastName  string
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&ap.ID,
		&ap.ClientID,
		&ap.ServiceID,
		&ap.StartTime,
		&ap.EndTime,
		&ap.Status,
		&ap.IsManual,
		&ap.ClientNotes,
		&ap.MasterNotes,
		&ap.Version,
		&createdAt,
		&updatedAt,
		&firstName,
		&lastName,
		&ap.ClientPhone,
		&ap.ServiceName,
	)
	if err != nil {
		return nil, err
	}

	ap.ClientName = firstName
	if lastName != "" {
		ap.ClientName = firstName + " " + lastName
	}
	ap.CreatedAt = createdAt.Time
	ap.UpdatedAt = updatedAt.Time

	return &ap, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		ap, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, ap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate appointment rows: %v", ErrScanRow, err)
	}

	return appointments, nil
}
