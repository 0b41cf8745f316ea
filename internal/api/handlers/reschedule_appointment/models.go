package reschedule_appointment

import (
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	"github.com/frolovsnails/FSN-BookingService/internal/usecase/reschedule"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	NewStartTime string `json:"newStartTime"` // "2026-02-18 14:00"
	NewServiceID *int64 `json:"newServiceId,omitempty"`
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	ID              int64  `json:"id"`
	ClientID        int64  `json:"clientId"`
	ServiceID       int64  `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	Version         int64  `json:"version"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(appointmentID int64) (*reschedule.Request, error) {
	newStart, err := time.Parse(domain.DateTimeFormat, r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &reschedule.Request{
		AppointmentID: appointmentID,
		NewStartTime:  newStart,
		NewServiceID:  r.NewServiceID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reschedule.Response) *RescheduleResponse {
	return &RescheduleResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		EndTime:         resp.EndTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Version:         resp.Version,
	}
}
