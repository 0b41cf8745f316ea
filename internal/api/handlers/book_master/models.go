package book_master

import (
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	bookMaster "github.com/frolovsnails/FSN-BookingService/internal/usecase/book_master"
)

// BookRequest HTTP request model ручной записи мастером
type BookRequest struct {
	ClientID        *int64  `json:"clientId,omitempty"`
	ClientPhone     string  `json:"clientPhone,omitempty"`
	ClientFirstName string  `json:"clientFirstName,omitempty"`
	ClientLastName  string  `json:"clientLastName,omitempty"`
	ServiceID       int64   `json:"serviceId"`
	StartTime       string  `json:"startTime"` // "2026-02-18 11:45"
	MasterNotes     *string `json:"masterNotes,omitempty"`
}

// BookResponse HTTP response model
type BookResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	ClientName      string  `json:"clientName"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	MasterNotes     *string `json:"masterNotes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookRequest) ToUseCaseRequest() (*bookMaster.Request, error) {
	startTime, err := time.Parse(domain.DateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookMaster.Request{
		ClientID:        r.ClientID,
		ClientPhone:     r.ClientPhone,
		ClientFirstName: r.ClientFirstName,
		ClientLastName:  r.ClientLastName,
		ServiceID:       r.ServiceID,
		StartTime:       startTime,
		MasterNotes:     r.MasterNotes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookMaster.Response) *BookResponse {
	return &BookResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ClientName:      resp.ClientName,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		EndTime:         resp.EndTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		MasterNotes:     resp.MasterNotes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
