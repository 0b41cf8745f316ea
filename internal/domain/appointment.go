package domain

import (
	"fmt"
	"time"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusCreated   AppointmentStatus = "CREATED"   // создана клиентом
	StatusPending   AppointmentStatus = "PENDING"   // ожидает подтверждения мастера
	StatusConfirmed AppointmentStatus = "CONFIRMED" // подтверждена мастером
	StatusCancelled AppointmentStatus = "CANCELLED" // отменена
	StatusCompleted AppointmentStatus = "COMPLETED" // выполнена
)

// AllStatuses все статусы записи
var AllStatuses = []AppointmentStatus{
	StatusCreated,
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ParseStatus конвертирует строку в AppointmentStatus
func ParseStatus(s string) (AppointmentStatus, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Appointment запись клиента на услугу - центральная сущность системы.
// В расписании салона один мастер, поэтому активные записи образуют
// единую временную шкалу без пересечений.
type Appointment struct {
	ID        int64
	ClientID  int64
	ServiceID int64

	StartTime time.Time
	EndTime   time.Time // StartTime + длительность услуги, округленная вверх до гранулярности

	Status   AppointmentStatus
	IsManual bool // true - ручная запись мастера, без проверки сетки слотов

	ClientNotes *string
	MasterNotes *string

	// Счетчик версий для оптимистичной блокировки:
	// UPDATE ... WHERE id = ? AND version = ?
	Version int64

	// Денормализованные поля, заполняются JOIN'ом при чтении
	ClientName  string
	ClientPhone string
	ServiceName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval возвращает интервал записи
func (a *Appointment) Interval() TimeInterval {
	return TimeInterval{Start: a.StartTime, End: a.EndTime}
}

// IsActive возвращает true, если запись занимает место в расписании.
// Отмененные записи место не занимают.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelledByClient возвращает true, если клиент может сам отменить запись.
// Клиенту доступна отмена только до подтверждения мастером.
func (a *Appointment) CanBeCancelledByClient() bool {
	return a.Status == StatusCreated || a.Status == StatusPending
}

// ValidateTransition проверяет допустимость перехода статуса.
// Граф переходов:
//
//	CREATED   -> PENDING, CANCELLED
//	PENDING   -> CONFIRMED, CANCELLED
//	CONFIRMED -> COMPLETED, CANCELLED
//	CANCELLED, COMPLETED - терминальные
func ValidateTransition(from, to AppointmentStatus) error {
	allowed := map[AppointmentStatus][]AppointmentStatus{
		StatusCreated:   {StatusPending, StatusCancelled},
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
	}

	for _, next := range allowed[from] {
		if next == to {
			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
