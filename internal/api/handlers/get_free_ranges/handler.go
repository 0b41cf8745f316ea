package get_free_ranges

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	getFreeRanges "github.com/frolovsnails/FSN-BookingService/internal/usecase/get_free_ranges"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная минимальная длительность"
	msgDateUnavailable = "на эту дату нет рабочего дня"
)

type Handler struct {
	useCase GetFreeRangesUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeRangesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/free-ranges?date=YYYY-MM-DD&minDuration=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /free-ranges - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	minDuration := 0
	if raw := r.URL.Query().Get("minDuration"); raw != "" {
		minDuration, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /free-ranges - Invalid minDuration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeRanges.Request{
		Date:               date,
		MinDurationMinutes: minDuration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeRanges.ErrDateUnavailable):
			handlers.RespondNotFound(w, msgDateUnavailable)

		case errors.Is(err, getFreeRanges.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /free-ranges - Failed: date=%s, error=%v", date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /free-ranges - %d ranges returned: date=%s", len(result.FreeRanges), date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
