package book_master

import "errors"

var (
	// ErrInvalidClientSpec возвращается, когда не указан ни существующий
	// клиент, ни данные для создания нового (телефон и имя)
	ErrInvalidClientSpec = errors.New("book_master: either clientID or phone with first name is required")

	// ErrClientNotFound возвращается, когда указанный клиент не найден
	ErrClientNotFound = errors.New("book_master: client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("book_master: service not found")

	// ErrServiceInactive возвращается, когда услуга выведена из каталога
	ErrServiceInactive = errors.New("book_master: service is inactive")

	// ErrDateUnavailable возвращается, когда на дату нет рабочего дня
	// либо день явно закрыт
	ErrDateUnavailable = errors.New("book_master: date is not available for booking")

	// ErrSlotUnavailable возвращается, когда выбранное время занято,
	// не помещается в рабочий день или было перехвачено конкурентным запросом
	ErrSlotUnavailable = errors.New("book_master: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_master: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_master: internal error")
)
