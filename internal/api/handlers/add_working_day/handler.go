package add_working_day

import (
	"errors"
	"net/http"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidHours       = "начало рабочего дня должно быть раньше конца"
	msgDuplicateDay       = "рабочий день на эту дату уже существует"
)

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

// Handle POST /api/v1/schedule/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, workStart, workEnd, err := req.Parse()
	if err != nil {
		h.logger.Warn("POST /schedule/days - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.AddDay(r.Context(), date, workStart, workEnd, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidHours):
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, schedule.ErrDuplicateDay):
			handlers.RespondError(w, http.StatusConflict, msgDuplicateDay)

		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /schedule/days - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/days - Working day created: day_id=%d, date=%s", result.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, handlers.WorkingDayFromDomain(result))
}
