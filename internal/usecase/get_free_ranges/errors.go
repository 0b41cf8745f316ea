package get_free_ranges

import "errors"

var (
	// ErrDateUnavailable возвращается, когда на дату нет рабочего дня
	// либо день явно закрыт
	ErrDateUnavailable = errors.New("get_free_ranges: date is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_ranges: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_ranges: internal error")
)
