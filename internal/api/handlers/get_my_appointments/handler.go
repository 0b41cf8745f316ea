package get_my_appointments

import (
	"errors"
	"net/http"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/api/middleware"
	"github.com/frolovsnails/FSN-BookingService/internal/service/appointments"
)

const msgClientNotFound = "клиент не найден"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := middleware.ClientPhone(r.Context())

	list, err := h.service.ListForClient(r.Context(), phone)
	if err != nil {
		if errors.Is(err, appointments.ErrClientNotFound) {
			handlers.RespondNotFound(w, msgClientNotFound)
			return
		}
		h.logger.Error("GET /me/appointments - Failed: phone=%s, error=%v", phone, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/appointments - %d appointments returned: phone=%s", len(list), phone)
	handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentsFromDomain(list))
}
