package domain

import "errors"

var (
	// ErrInvalidInterval возвращается при попытке создать интервал с start >= end
	ErrInvalidInterval = errors.New("domain: interval start must be before end")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса записи
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrUnknownStatus возвращается при неизвестном статусе записи
	ErrUnknownStatus = errors.New("domain: unknown appointment status")

	// ErrUnknownBlockReason возвращается при неизвестной причине блокировки
	ErrUnknownBlockReason = errors.New("domain: unknown block reason")
)
