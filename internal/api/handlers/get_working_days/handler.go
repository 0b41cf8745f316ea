package get_working_days

import (
	"net/http"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

const (
	msgInvalidRange = "некорректный диапазон дат, ожидается YYYY-MM-DD"

	// сколько ближайших открытых дней показывать без явного диапазона
	defaultUpcomingDays = 14
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

// Handle GET /api/v1/schedule/days?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Без параметров возвращает ближайшие открытые дни.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		list []*domain.WorkingDay
		err  error
	)

	if query.Get("from") != "" || query.Get("to") != "" {
		from, errFrom := time.Parse(domain.DateFormat, query.Get("from"))
		to, errTo := time.Parse(domain.DateFormat, query.Get("to"))
		if errFrom != nil || errTo != nil {
			h.logger.Warn("GET /schedule/days - Invalid range: from=%s, to=%s", query.Get("from"), query.Get("to"))
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		list, err = h.service.ListDays(r.Context(), from, to)
	} else {
		list, err = h.service.ListUpcomingOpenDays(r.Context(), defaultUpcomingDays)
	}

	if err != nil {
		h.logger.Error("GET /schedule/days - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]handlers.WorkingDayResponse, 0, len(list))
	for _, day := range list {
		result = append(result, handlers.WorkingDayFromDomain(day))
	}

	h.logger.Info("GET /schedule/days - %d days returned", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
