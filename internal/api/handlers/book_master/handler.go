package book_master

import (
	"errors"
	"net/http"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	bookMaster "github.com/frolovsnails/FSN-BookingService/internal/usecase/book_master"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректное время начала, ожидается YYYY-MM-DD HH:MM"
	msgInvalidClientSpec  = "укажите клиента либо телефон с именем"
	msgClientNotFound     = "клиент не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceInactive    = "услуга недоступна для записи"
	msgDateUnavailable    = "запись на эту дату недоступна"
	msgSlotUnavailable    = "выбранное время недоступно"
)

type Handler struct {
	useCase BookMasterUseCase
	logger  Logger
}

func NewHandler(useCase BookMasterUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/master/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /master/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /master/appointments - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookMaster.ErrSlotUnavailable):
			h.logger.Warn("POST /master/appointments - Slot unavailable: start=%s", req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, bookMaster.ErrInvalidClientSpec):
			handlers.RespondBadRequest(w, msgInvalidClientSpec)

		case errors.Is(err, bookMaster.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookMaster.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookMaster.ErrServiceInactive):
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, bookMaster.ErrDateUnavailable):
			handlers.RespondBadRequest(w, msgDateUnavailable)

		case errors.Is(err, bookMaster.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /master/appointments - Failed to book: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /master/appointments - Manual appointment created: appointment_id=%d, client_id=%d",
		result.ID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
