package create_block

import (
	"errors"
	"net/http"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	"github.com/frolovsnails/FSN-BookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректное время, ожидается YYYY-MM-DD HH:MM"
	msgInvalidBlock       = "некорректные параметры блокировки"
)

// CreateBlockRequest HTTP request model
type CreateBlockRequest struct {
	StartTime string  `json:"startTime"` // "2026-02-18 14:00"
	EndTime   string  `json:"endTime"`   // "2026-02-18 16:00"
	Reason    string  `json:"reason"`    // VACATION, PERSONAL, SICK_LEAVE, OTHER
	Notes     *string `json:"notes,omitempty"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := time.Parse(domain.DateTimeFormat, req.StartTime)
	if err != nil {
		h.logger.Warn("POST /schedule/blocks - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	end, err := time.Parse(domain.DateTimeFormat, req.EndTime)
	if err != nil {
		h.logger.Warn("POST /schedule/blocks - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.CreateBlock(r.Context(), start, end, req.Reason, req.Notes)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidBlock)
			return
		}
		h.logger.Error("POST /schedule/blocks - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /schedule/blocks - Block created: block_id=%d, reason=%s", result.ID, result.Reason)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ScheduleBlockFromDomain(result))
}
