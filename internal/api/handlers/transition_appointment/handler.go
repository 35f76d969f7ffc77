package transition_appointment

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
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnknownAction       = "неизвестное действие"
	msgUnauthorized        = "требуется авторизация"
	msgForbidden           = "доступ запрещен"
	msgBusinessNotFound    = "бизнес не найден"
	msgNotFound            = "запись не найдена"
	msgIllegalTransition   = "действие недоступно для текущего статуса записи"
	msgNotCompletableYet   = "запись нельзя завершить до дня визита"
	msgInvalidConfirmation = "токен подтверждения недействителен или истек"
	msgRemoteStore         = "хранилище записей отклонило изменение"
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

// Handle POST /api/v1/businesses/{businessId}/appointments/{appointmentId}/{action}
// action: accept | reject | complete. Для reject нужен второй запрос с confirmationToken.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	businessID := vars["businessId"]
	appointmentID := vars["appointmentId"]

	action, ok := scheduling.ParseAction(vars["action"])
	if !ok || action == scheduling.ActionDelete {
		h.logger.Warn("POST /appointments/{id}/{action} - Unknown action: %s", vars["action"])
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/%s - Invalid request body: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &transitionAppointment.Request{
		Session:           session,
		BusinessID:        businessID,
		AppointmentID:     appointmentID,
		Action:            action,
		ConfirmationToken: req.ConfirmationToken,
	})
	if err != nil {
		h.respondError(w, err, string(action), appointmentID)
		return
	}

	if result.ConfirmationRequired {
		h.logger.Info("POST /appointments/{id}/%s - Confirmation issued: appointment_id=%s", action, appointmentID)
		handlers.RespondJSON(w, http.StatusAccepted, FromConfirmation(result))
		return
	}

	h.logger.Info("POST /appointments/{id}/%s - Applied: appointment_id=%s, user_id=%s", action, appointmentID, session.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, action, appointmentID string) {
	switch {
	case errors.Is(err, transitionAppointment.ErrInvalidInput):
		h.logger.Warn("POST /appointments/{id}/%s - Invalid input: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	case errors.Is(err, transitionAppointment.ErrForbidden):
		h.logger.Warn("POST /appointments/{id}/%s - Forbidden: appointment_id=%s: %v", action, appointmentID, err)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, transitionAppointment.ErrBusinessNotFound):
		handlers.RespondNotFound(w, msgBusinessNotFound)

	case errors.Is(err, transitionAppointment.ErrAppointmentNotFound):
		h.logger.Warn("POST /appointments/{id}/%s - Not found: appointment_id=%s", action, appointmentID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, transitionAppointment.ErrIllegalTransition):
		h.logger.Warn("POST /appointments/{id}/%s - Illegal transition: %v", action, err)
		handlers.RespondConflict(w, msgIllegalTransition)

	case errors.Is(err, transitionAppointment.ErrNotCompletableYet):
		handlers.RespondConflict(w, msgNotCompletableYet)

	case errors.Is(err, transitionAppointment.ErrInvalidConfirmation):
		h.logger.Warn("POST /appointments/{id}/%s - Invalid confirmation: appointment_id=%s", action, appointmentID)
		handlers.RespondConflict(w, msgInvalidConfirmation)

	case errors.Is(err, transitionAppointment.ErrRemoteStore):
		h.logger.Error("POST /appointments/{id}/%s - Remote store error: %v", action, err)
		handlers.RespondBadGateway(w, msgRemoteStore)

	default:
		h.logger.Error("POST /appointments/{id}/%s - Failed: appointment_id=%s, error=%v", action, appointmentID, err)
		handlers.RespondInternalError(w)
	}
}
