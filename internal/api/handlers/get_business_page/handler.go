package get_business_page

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sudeal/Nokta-sub000/internal/api/handlers"
	"github.com/sudeal/Nokta-sub000/internal/api/middleware"
	"github.com/sudeal/Nokta-sub000/internal/service/businesses"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgNotFound          = "бизнес не найден"
	msgRemoteStore       = "хранилище записей недоступно"
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

// Handle GET /api/v1/businesses/{businessId}/page
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]

	page, err := h.service.Page(r.Context(), middleware.GetSession(r.Context()), businessID)
	if err != nil {
		switch {
		case errors.Is(err, businesses.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/page - Invalid business ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBusinessID)

		case errors.Is(err, businesses.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/page - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, businesses.ErrRemoteStore):
			h.logger.Error("GET /businesses/{id}/page - Remote store error: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadGateway(w, msgRemoteStore)

		default:
			h.logger.Error("GET /businesses/{id}/page - Failed to compose page: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/page - Page composed: business_id=%s, sections=%d", businessID, len(page.Sections))
	handlers.RespondJSON(w, http.StatusOK, page)
}
