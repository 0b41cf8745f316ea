package book_client

import (
	"errors"
	"net/http"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/api/middleware"
	bookClient "github.com/frolovsnails/FSN-BookingService/internal/usecase/book_client"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректное время начала, ожидается YYYY-MM-DD HH:MM"
	msgClientNotFound     = "клиент не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceInactive    = "услуга недоступна для записи"
	msgDateUnavailable    = "запись на эту дату недоступна"
	msgSlotUnavailable    = "выбранное время недоступно"
)

type Handler struct {
	useCase BookClientUseCase
	logger  Logger
}

func NewHandler(useCase BookClientUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	phone := middleware.ClientPhone(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(phone)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookClient.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: phone=%s, start=%s", phone, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, bookClient.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: phone=%s", phone)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookClient.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookClient.ErrServiceInactive):
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, bookClient.ErrDateUnavailable):
			handlers.RespondBadRequest(w, msgDateUnavailable)

		case errors.Is(err, bookClient.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to book: phone=%s, error=%v", phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, client_id=%d",
		result.ID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
