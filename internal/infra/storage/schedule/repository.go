package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	"github.com/frolovsnails/FSN-BookingService/pkg/psqlbuilder"
	"github.com/frolovsnails/FSN-BookingService/pkg/txmanager"
)

const pqUniqueViolation = "23505"

var dayColumns = []string{
	"id",
	"work_date",
	"work_start",
	"work_end",
	"is_open",
	"notes",
}

var blockColumns = []string{
	"id",
	"start_time",
	"end_time",
	"reason",
	"notes",
	"is_active",
}

// Repository репозиторий календаря: рабочие дни и блокировки времени
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// ---------- Рабочие дни ----------

// CreateDay добавляет рабочий день. Дата уникальна: повторное добавление
// возвращает ErrDuplicateDay. Время пишется с точностью до минуты.
func (r *Repository) CreateDay(ctx context.Context, day *domain.WorkingDay) (*domain.WorkingDay, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_days").
		Columns("work_date", "work_start", "work_end", "is_open", "notes").
		Values(
			domain.DateOnly(day.Date),
			domain.TruncateToMinute(day.WorkStart),
			domain.TruncateToMinute(day.WorkEnd),
			day.IsOpen,
			day.Notes,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateDay - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&day.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateDay
		}
		return nil, fmt.Errorf("%w: CreateDay - execute insert: %v", ErrExecQuery, err)
	}

	return day, nil
}

// GetDayByDate получает рабочий день по дате
func (r *Repository) GetDayByDate(ctx context.Context, date time.Time) (*domain.WorkingDay, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayColumns...).
		From("working_days").
		Where(squirrel.Eq{"work_date": domain.DateOnly(date)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayByDate - build select query: %v", ErrBuildQuery, err)
	}

	day, err := scanDay(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayByDate - scan day: %v", ErrScanRow, err)
	}

	return day, nil
}

// GetDayByID получает рабочий день по ID
func (r *Repository) GetDayByID(ctx context.Context, id int64) (*domain.WorkingDay, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayColumns...).
		From("working_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayByID - build select query: %v", ErrBuildQuery, err)
	}

	day, err := scanDay(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayByID - scan day: %v", ErrScanRow, err)
	}

	return day, nil
}

// UpdateDay обновляет границы, доступность и заметки рабочего дня
func (r *Repository) UpdateDay(ctx context.Context, day *domain.WorkingDay) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("working_days").
		Set("work_start", domain.TruncateToMinute(day.WorkStart)).
		Set("work_end", domain.TruncateToMinute(day.WorkEnd)).
		Set("is_open", day.IsOpen).
		Set("notes", day.Notes).
		Where(squirrel.Eq{"id": day.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateDay - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDay - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDay - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrDayNotFound
	}

	return nil
}

// DeleteDay удаляет рабочий день
func (r *Repository) DeleteDay(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrDayNotFound
	}

	return nil
}

// ListDays возвращает рабочие дни в диапазоне дат включительно, по возрастанию
func (r *Repository) ListDays(ctx context.Context, from, to time.Time) ([]*domain.WorkingDay, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayColumns...).
		From("working_days").
		Where(squirrel.GtOrEq{"work_date": domain.DateOnly(from)}).
		Where(squirrel.LtOrEq{"work_date": domain.DateOnly(to)}).
		OrderBy("work_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDays(rows)
}

// ListUpcomingOpenDays возвращает ближайшие открытые дни начиная с from,
// не больше limit штук, по возрастанию даты
func (r *Repository) ListUpcomingOpenDays(ctx context.Context, from time.Time, limit int) ([]*domain.WorkingDay, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayColumns...).
		From("working_days").
		Where(squirrel.GtOrEq{"work_date": domain.DateOnly(from)}).
		Where(squirrel.Eq{"is_open": true}).
		OrderBy("work_date").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingOpenDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingOpenDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDays(rows)
}

// ---------- Блокировки ----------

// CreateBlock сохраняет блокировку времени. Время пишется с точностью до минуты.
func (r *Repository) CreateBlock(ctx context.Context, block *domain.ScheduleBlock) (*domain.ScheduleBlock, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_blocks").
		Columns("start_time", "end_time", "reason", "notes", "is_active").
		Values(
			domain.TruncateToMinute(block.StartTime),
			domain.TruncateToMinute(block.EndTime),
			block.Reason,
			block.Notes,
			block.IsActive,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlock - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&block.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateBlock - execute insert: %v", ErrExecQuery, err)
	}

	return block, nil
}

// GetBlockByID получает блокировку по ID
func (r *Repository) GetBlockByID(ctx context.Context, id int64) (*domain.ScheduleBlock, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("schedule_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockByID - build select query: %v", ErrBuildQuery, err)
	}

	block, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockByID - scan block: %v", ErrScanRow, err)
	}

	return block, nil
}

// DeactivateBlock снимает блокировку (is_active = false)
func (r *Repository) DeactivateBlock(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_blocks").
		Set("is_active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeactivateBlock - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeactivateBlock - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeactivateBlock - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// ListActiveBlocksInRange возвращает активные блокировки, пересекающие
// окно [from, to), по возрастанию начала
func (r *Repository) ListActiveBlocksInRange(ctx context.Context, from, to time.Time) ([]*domain.ScheduleBlock, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("schedule_blocks").
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBlocksInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBlocksInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.ScheduleBlock, 0)
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan block row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate block rows: %v", ErrScanRow, err)
	}

	return blocks, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDay(row rowScanner) (*domain.WorkingDay, error) {
	var day domain.WorkingDay
	err := row.Scan(
		&day.ID,
		&day.Date,
		&day.WorkStart,
		&day.WorkEnd,
		&day.IsOpen,
		&day.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func scanDays(rows *sql.Rows) ([]*domain.WorkingDay, error) {
	days := make([]*domain.WorkingDay, 0)
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan day row: %v", ErrScanRow, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate day rows: %v", ErrScanRow, err)
	}

	return days, nil
}

func scanBlock(row rowScanner) (*domain.ScheduleBlock, error) {
	var block domain.ScheduleBlock
	err := row.Scan(
		&block.ID,
		&block.StartTime,
		&block.EndTime,
		&block.Reason,
		&block.Notes,
		&block.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &block, nil
}
