package schedule

import "errors"

var (
	// ErrDayNotFound возвращается, когда рабочий день не найден
	ErrDayNotFound = errors.New("schedule.service: working day not found")

	// ErrDuplicateDay возвращается при попытке добавить день на уже занятую дату
	ErrDuplicateDay = errors.New("schedule.service: working day already exists for this date")

	// ErrDayInUse возвращается при попытке удалить день, на который есть
	// неотмененные записи
	ErrDayInUse = errors.New("schedule.service: working day has active appointments")

	// ErrInvalidHours возвращается, когда начало рабочего дня не раньше конца
	ErrInvalidHours = errors.New("schedule.service: work start must be before work end")

	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("schedule.service: schedule block not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
