package book_client

import (
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	bookClient "github.com/frolovsnails/FSN-BookingService/internal/usecase/book_client"
)

// BookRequest HTTP request model
type BookRequest struct {
	ServiceID   int64   `json:"serviceId"`
	StartTime   string  `json:"startTime"` // "2026-02-18 11:30"
	ClientNotes *string `json:"clientNotes,omitempty"`
}

// BookResponse HTTP response model
type BookResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ClientNotes     *string `json:"clientNotes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookRequest) ToUseCaseRequest(phone string) (*bookClient.Request, error) {
	startTime, err := time.Parse(domain.DateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookClient.Request{
		Phone:       phone,
		ServiceID:   r.ServiceID,
		StartTime:   startTime,
		ClientNotes: r.ClientNotes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookClient.Response) *BookResponse {
	return &BookResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		EndTime:         resp.EndTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ClientNotes:     resp.ClientNotes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
