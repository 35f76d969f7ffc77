package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sudeal/Nokta-sub000/internal/api/handlers"
	"github.com/sudeal/Nokta-sub000/internal/service/businesses"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, ожидается scheduledAt в формате RFC3339"
	msgNotFound           = "бизнес не найден"
	msgRemoteStore        = "хранилище записей недоступно"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]

	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), businessID, req.ScheduledAt)
	if err != nil {
		switch {
		case errors.Is(err, businesses.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, businesses.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/availability - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, businesses.ErrRemoteStore):
			h.logger.Error("POST /businesses/{id}/availability - Remote store error: %v", err)
			handlers.RespondBadGateway(w, msgRemoteStore)

		default:
			h.logger.Error("POST /businesses/{id}/availability - Failed to check: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
