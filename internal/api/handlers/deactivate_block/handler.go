package deactivate_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/service/schedule"
)

const (
	msgInvalidID     = "некорректный идентификатор блокировки"
	msgBlockNotFound = "блокировка не найдена"
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

// Handle PATCH /api/v1/schedule/blocks/{blockId}/deactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID, err := strconv.ParseInt(mux.Vars(r)["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /schedule/blocks/{id}/deactivate - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.DeactivateBlock(r.Context(), blockID)
	if err != nil {
		if errors.Is(err, schedule.ErrBlockNotFound) {
			handlers.RespondNotFound(w, msgBlockNotFound)
			return
		}
		h.logger.Error("PATCH /schedule/blocks/{id}/deactivate - Failed: block_id=%d, error=%v", blockID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /schedule/blocks/{id}/deactivate - Block deactivated: block_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.ScheduleBlockFromDomain(result))
}
