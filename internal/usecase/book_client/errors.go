package book_client

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент с таким телефоном не зарегистрирован
	ErrClientNotFound = errors.New("book_client: client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("book_client: service not found")

	// ErrServiceInactive возвращается, когда услуга выведена из каталога
	ErrServiceInactive = errors.New("book_client: service is inactive")

	// ErrDateUnavailable возвращается, когда на дату нет рабочего дня
	// либо день явно закрыт
	ErrDateUnavailable = errors.New("book_client: date is not available for booking")

	// ErrSlotUnavailable возвращается, когда выбранное время занято,
	// не лежит на клиентской сетке, не помещается в рабочий день
	// или было перехвачено конкурентным запросом
	ErrSlotUnavailable = errors.New("book_client: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_client: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_client: internal error")
)
