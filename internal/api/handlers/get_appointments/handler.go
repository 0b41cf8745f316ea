package get_appointments

import (
	"net/http"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownStatus  = "неизвестный статус"
	msgFilterRequired = "укажите фильтр date или status"
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

// Handle GET /api/v1/appointments?date=YYYY-MM-DD либо ?status=PENDING.
// Выборка по статусу охватывает последний месяц.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch {
	case query.Get("date") != "":
		date, err := time.Parse(domain.DateFormat, query.Get("date"))
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}

		list, err := h.service.ListByDate(r.Context(), date)
		if err != nil {
			h.logger.Error("GET /appointments - Failed by date: date=%s, error=%v", query.Get("date"), err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /appointments - %d appointments returned: date=%s", len(list), query.Get("date"))
		handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentsFromDomain(list))

	case query.Get("status") != "":
		status, err := domain.ParseStatus(query.Get("status"))
		if err != nil {
			h.logger.Warn("GET /appointments - Unknown status: %s", query.Get("status"))
			handlers.RespondBadRequest(w, msgUnknownStatus)
			return
		}

		list, err := h.service.ListByStatus(r.Context(), status)
		if err != nil {
			h.logger.Error("GET /appointments - Failed by status: status=%s, error=%v", status, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /appointments - %d appointments returned: status=%s", len(list), status)
		handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentsFromDomain(list))

	default:
		handlers.RespondBadRequest(w, msgFilterRequired)
	}
}
