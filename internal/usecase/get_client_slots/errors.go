package get_client_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_client_slots: service not found")

	// ErrServiceInactive возвращается, когда услуга выведена из каталога
	ErrServiceInactive = errors.New("get_client_slots: service is inactive")

	// ErrDateUnavailable возвращается, когда на дату нет рабочего дня
	// либо день явно закрыт
	ErrDateUnavailable = errors.New("get_client_slots: date is not available for booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_client_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_client_slots: internal error")
)
