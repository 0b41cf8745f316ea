package reschedule

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule: appointment not found")

	// ErrNotReschedulable возвращается при попытке перенести запись
	// в терминальном статусе (отмененную или завершенную)
	ErrNotReschedulable = errors.New("reschedule: appointment cannot be rescheduled")

	// ErrServiceNotFound возвращается, когда новая услуга не найдена
	ErrServiceNotFound = errors.New("reschedule: service not found")

	// ErrServiceInactive возвращается, когда новая услуга выведена из каталога
	ErrServiceInactive = errors.New("reschedule: service is inactive")

	// ErrDateUnavailable возвращается, когда на новую дату нет рабочего дня
	// либо день явно закрыт
	ErrDateUnavailable = errors.New("reschedule: date is not available")

	// ErrSlotUnavailable возвращается, когда новое время занято,
	// не лежит на клиентской сетке или не помещается в рабочий день
	ErrSlotUnavailable = errors.New("reschedule: slot is not available")

	// ErrConcurrentUpdate возвращается, когда запись была изменена
	// параллельно другим запросом
	ErrConcurrentUpdate = errors.New("reschedule: appointment was modified concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule: internal error")
)
