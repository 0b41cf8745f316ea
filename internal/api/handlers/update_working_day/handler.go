package update_working_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный идентификатор дня"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidHours       = "начало рабочего дня должно быть раньше конца"
	msgDayNotFound        = "рабочий день не найден"
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

// Handle PUT /api/v1/schedule/days/{dayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayID, err := strconv.ParseInt(mux.Vars(r)["dayId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /schedule/days/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/days/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	workStart, workEnd, err := req.Parse()
	if err != nil {
		h.logger.Warn("PUT /schedule/days/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.UpdateDay(r.Context(), dayID, workStart, workEnd, req.IsOpen, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDayNotFound):
			handlers.RespondNotFound(w, msgDayNotFound)

		case errors.Is(err, schedule.ErrInvalidHours):
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /schedule/days/{id} - Failed: day_id=%d, error=%v", dayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/days/{id} - Working day updated: day_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.WorkingDayFromDomain(result))
}
