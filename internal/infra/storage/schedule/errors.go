package schedule

import "errors"

var (
	// ErrDayNotFound возвращается, когда рабочий день не найден
	ErrDayNotFound = errors.New("schedule.repository: working day not found")

	// ErrDuplicateDay возвращается при попытке добавить день на уже занятую дату
	ErrDuplicateDay = errors.New("schedule.repository: working day already exists for this date")

	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("schedule.repository: schedule block not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
