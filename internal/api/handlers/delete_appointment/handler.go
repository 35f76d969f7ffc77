package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sudeal/Nokta-sub000/internal/api/handlers"
	"github.com/sudeal/Nokta-sub000/internal/api/middleware"
	"github.com/sudeal/Nokta-sub000/internal/scheduling"
	transitionAppointment "github.com/sudeal/Nokta-sub000/internal/usecase/transition_appointment"
)

const (
	tokenQueryParam = "confirmationToken"
	tokenHeader     = "X-Confirmation-Token"
)

const (
	msgUnauthorized        = "требуется авторизация"
	msgInvalidRequest      = "некорректный запрос"
	msgForbidden           = "доступ запрещен"
	msgBusinessNotFound    = "бизнес не найден"
	msgNotFound            = "запись не найдена"
	msgIllegalTransition   = "запись в этом статусе нельзя удалить"
	msgInvalidConfirmation = "токен подтверждения недействителен или истек"
	msgRemoteStore         = "хранилище записей отклонило удаление"
)

type Handler struct {
	useCase TransitionUseCase
	logger  Logger
}

func NewHandler(useCase TransitionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/businesses/{businessId}/appointments/{appointmentId}
// Первый запрос возвращает 202 с токеном; повтор с ?confirmationToken= удаляет запись.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	businessID := vars["businessId"]
	appointmentID := vars["appointmentId"]

	token := r.URL.Query().Get(tokenQueryParam)
	if token == "" {
		token = r.Header.Get(tokenHeader)
	}

	result, err := h.useCase.Execute(r.Context(), &transitionAppointment.Request{
		Session:           session,
		BusinessID:        businessID,
		AppointmentID:     appointmentID,
		Action:            scheduling.ActionDelete,
		ConfirmationToken: token,
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionAppointment.ErrInvalidInput):
			h.logger.Warn("DELETE /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, transitionAppointment.ErrForbidden):
			h.logger.Warn("DELETE /appointments/{id} - Forbidden: appointment_id=%s, user_id=%s", appointmentID, session.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, transitionAppointment.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, transitionAppointment.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionAppointment.ErrIllegalTransition):
			h.logger.Warn("DELETE /appointments/{id} - Illegal transition: %v", err)
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, transitionAppointment.ErrInvalidConfirmation):
			handlers.RespondConflict(w, msgInvalidConfirmation)

		case errors.Is(err, transitionAppointment.ErrRemoteStore):
			h.logger.Error("DELETE /appointments/{id} - Remote store error: %v", err)
			handlers.RespondBadGateway(w, msgRemoteStore)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.ConfirmationRequired {
		h.logger.Info("DELETE /appointments/{id} - Confirmation issued: appointment_id=%s", appointmentID)
		handlers.RespondJSON(w, http.StatusAccepted, &ConfirmationResponse{
			ConfirmationRequired: true,
			ConfirmationToken:    result.ConfirmationToken,
			ExpiresAt:            result.ConfirmationExpires,
			Action:               string(result.Action),
		})
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: appointment_id=%s, user_id=%s", appointmentID, session.UserID)
	w.WriteHeader(http.StatusNoContent)
}
