package handlers

import (
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

// AppointmentResponse HTTP-представление записи, общее для всех ручек чтения
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	ClientID    int64   `json:"clientId"`
	ClientName  string  `json:"clientName,omitempty"`
	ClientPhone string  `json:"clientPhone,omitempty"`
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName,omitempty"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	IsManual    bool    `json:"isManual"`
	ClientNotes *string `json:"clientNotes,omitempty"`
	MasterNotes *string `json:"masterNotes,omitempty"`
	Version     int64   `json:"version"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// AppointmentFromDomain конвертирует доменную запись в HTTP-представление
func AppointmentFromDomain(ap *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          ap.ID,
		ClientID:    ap.ClientID,
		ClientName:  ap.ClientName,
		ClientPhone: ap.ClientPhone,
		ServiceID:   ap.ServiceID,
		ServiceName: ap.ServiceName,
		StartTime:   ap.StartTime.Format(time.RFC3339),
		EndTime:     ap.EndTime.Format(time.RFC3339),
		Status:      string(ap.Status),
		IsManual:    ap.IsManual,
		ClientNotes: ap.ClientNotes,
		MasterNotes: ap.MasterNotes,
		Version:     ap.Version,
		CreatedAt:   ap.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   ap.UpdatedAt.Format(time.RFC3339),
	}
}

// AppointmentsFromDomain конвертирует срез доменных записей
func AppointmentsFromDomain(list []*domain.Appointment) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(list))
	for _, ap := range list {
		result = append(result, AppointmentFromDomain(ap))
	}
	return result
}

// WorkingDayResponse HTTP-представление рабочего дня
type WorkingDayResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	WorkStart string  `json:"workStart"`
	WorkEnd   string  `json:"workEnd"`
	IsOpen    bool    `json:"isOpen"`
	Notes     *string `json:"notes,omitempty"`
}

// WorkingDayFromDomain конвертирует доменный рабочий день в HTTP-представление
func WorkingDayFromDomain(day *domain.WorkingDay) WorkingDayResponse {
	return WorkingDayResponse{
		ID:        day.ID,
		Date:      day.Date.Format(domain.DateFormat),
		WorkStart: day.WorkStart.Format(domain.TimeFormat),
		WorkEnd:   day.WorkEnd.Format(domain.TimeFormat),
		IsOpen:    day.IsOpen,
		Notes:     day.Notes,
	}
}

// ScheduleBlockResponse HTTP-представление блокировки
type ScheduleBlockResponse struct {
	ID        int64   `json:"id"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Reason    string  `json:"reason"`
	Notes     *string `json:"notes,omitempty"`
	IsActive  bool    `json:"isActive"`
}

// ScheduleBlockFromDomain конвертирует доменную блокировку в HTTP-представление
func ScheduleBlockFromDomain(block *domain.ScheduleBlock) ScheduleBlockResponse {
	return ScheduleBlockResponse{
		ID:        block.ID,
		StartTime: block.StartTime.Format(time.RFC3339),
		EndTime:   block.EndTime.Format(time.RFC3339),
		Reason:    string(block.Reason),
		Notes:     block.Notes,
		IsActive:  block.IsActive,
	}
}
