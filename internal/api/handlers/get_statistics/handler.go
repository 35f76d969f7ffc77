package get_statistics

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sudeal/Nokta-sub000/internal/api/handlers"
	"github.com/sudeal/Nokta-sub000/internal/api/middleware"
	"github.com/sudeal/Nokta-sub000/internal/service/appointments"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgForbidden       = "доступ запрещен"
	msgNotFound        = "бизнес не найден"
	msgFeatureDisabled = "статистика не подключена для этого бизнеса"
	msgRemoteStore     = "хранилище записей недоступно"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/statistics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	businessID := mux.Vars(r)["businessId"]

	result, err := h.service.Statistics(r.Context(), session, businessID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /businesses/{id}/statistics - Access denied: business_id=%s, user_id=%s", businessID, session.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrFeatureDisabled):
			handlers.RespondForbidden(w, msgFeatureDisabled)

		case errors.Is(err, appointments.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrRemoteStore):
			h.logger.Error("GET /businesses/{id}/statistics - Remote store error: %v", err)
			handlers.RespondBadGateway(w, msgRemoteStore)

		default:
			h.logger.Error("GET /businesses/{id}/statistics - Failed: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
