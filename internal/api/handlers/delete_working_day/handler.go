package delete_working_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/service/schedule"
)

const (
	msgInvalidID   = "некорректный идентификатор дня"
	msgDayNotFound = "рабочий день не найден"
	msgDayInUse    = "на этот день есть неотмененные записи"
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

// Handle DELETE /api/v1/schedule/days/{dayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayID, err := strconv.ParseInt(mux.Vars(r)["dayId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/days/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteDay(r.Context(), dayID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrDayNotFound):
			handlers.RespondNotFound(w, msgDayNotFound)

		case errors.Is(err, schedule.ErrDayInUse):
			h.logger.Warn("DELETE /schedule/days/{id} - Day in use: day_id=%d", dayID)
			handlers.RespondError(w, http.StatusConflict, msgDayInUse)

		default:
			h.logger.Error("DELETE /schedule/days/{id} - Failed: day_id=%d, error=%v", dayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/days/{id} - Working day deleted: day_id=%d", dayID)
	w.WriteHeader(http.StatusNoContent)
}
