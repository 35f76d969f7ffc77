package get_customer_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sudeal/Nokta-sub000/internal/api/handlers"
	"github.com/sudeal/Nokta-sub000/internal/api/middleware"
	"github.com/sudeal/Nokta-sub000/internal/service/appointments"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgForbidden    = "список доступен только клиенту"
	msgNotFound     = "бизнес не найден"
	msgRemoteStore  = "хранилище записей недоступно"
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

// Handle GET /api/v1/businesses/{businessId}/appointments/mine
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	businessID := mux.Vars(r)["businessId"]

	result, err := h.service.CustomerAppointments(r.Context(), session, businessID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/mine - Access denied: business_id=%s, user_id=%s", businessID, session.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrRemoteStore):
			h.logger.Error("GET /appointments/mine - Remote store error: %v", err)
			handlers.RespondBadGateway(w, msgRemoteStore)

		default:
			h.logger.Error("GET /appointments/mine - Failed to get appointments: business_id=%s, user_id=%s, error=%v",
				businessID, session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/mine - Appointments retrieved: business_id=%s, user_id=%s, count=%d",
		businessID, session.UserID, len(result.Pending)+len(result.All))
	handlers.RespondJSON(w, http.StatusOK, result)
}
