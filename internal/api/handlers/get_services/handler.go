package get_services

import (
	"net/http"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
	"github.com/frolovsnails/FSN-BookingService/internal/domain"
)

// ServiceResponse HTTP-представление услуги каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category,omitempty"`
}

type Handler struct {
	catalog CatalogRepository
	logger  Logger
}

func NewHandler(catalog CatalogRepository, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]ServiceResponse, 0, len(list))
	for _, svc := range list {
		result = append(result, fromDomain(svc))
	}

	h.logger.Info("GET /services - %d services returned", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func fromDomain(svc *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Category:        svc.Category,
	}
}
