package get_appointment_events

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
	msgJournalDisabled = "журнал действий не настроен"
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

// Handle GET /api/v1/businesses/{businessId}/appointments/{appointmentId}/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	businessID := vars["businessId"]
	appointmentID := vars["appointmentId"]

	result, err := h.service.Events(r.Context(), session, businessID, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id}/events - Access denied: business_id=%s, user_id=%s", businessID, session.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrJournalDisabled):
			handlers.RespondError(w, http.StatusNotImplemented, msgJournalDisabled)

		default:
			h.logger.Error("GET /appointments/{id}/events - Failed: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
