package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("appointments.service: client not found")

	// ErrNotOwner возвращается, когда клиент обращается к чужой записи
	ErrNotOwner = errors.New("appointments.service: appointment belongs to another client")

	// ErrCancelNotAllowed возвращается, когда запись нельзя отменить
	// силами клиента (уже подтверждена, выполнена или отменена)
	ErrCancelNotAllowed = errors.New("appointments.service: appointment cannot be cancelled by client")

	// ErrConcurrentUpdate возвращается, когда запись была изменена
	// конкурентно между чтением и записью
	ErrConcurrentUpdate = errors.New("appointments.service: appointment was modified concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
