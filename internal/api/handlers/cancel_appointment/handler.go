package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/api/middleware"
	"github.com/frolovsnails/FSN-BookingService/internal/service/appointments"
)

const (
	msgInvalidID           = "некорректный идентификатор записи"
	msgAppointmentNotFound = "запись не найдена"
	msgClientNotFound      = "клиент не найден"
	msgNotOwner            = "запись принадлежит другому клиенту"
	msgCancelNotAllowed    = "запись уже подтверждена, для отмены свяжитесь с мастером"
	msgConcurrentUpdate    = "запись была изменена параллельно, обновите данные"
)

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

// Handle PATCH /api/v1/me/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /me/appointments/{id}/cancel - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	phone := middleware.ClientPhone(r.Context())

	result, err := h.service.CancelAsClient(r.Context(), phone, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, appointments.ErrNotOwner):
			h.logger.Warn("PATCH /me/appointments/{id}/cancel - Not owner: appointment_id=%d, phone=%s",
				appointmentID, phone)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, appointments.ErrCancelNotAllowed):
			handlers.RespondError(w, http.StatusConflict, msgCancelNotAllowed)

		case errors.Is(err, appointments.ErrConcurrentUpdate):
			handlers.RespondError(w, http.StatusConflict, msgConcurrentUpdate)

		default:
			h.logger.Error("PATCH /me/appointments/{id}/cancel - Failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /me/appointments/{id}/cancel - Appointment cancelled: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentFromDomain(result))
}
