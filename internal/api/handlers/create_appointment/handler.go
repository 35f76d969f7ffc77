package create_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sudeal/Nokta-sub000/internal/api/handlers"
	"github.com/sudeal/Nokta-sub000/internal/api/middleware"
	bookAppointment "github.com/sudeal/Nokta-sub000/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgForbidden          = "записываться могут только клиенты"
	msgNotFound           = "бизнес не найден"
	msgPastDate           = "выбранное время уже прошло"
	msgOutsideHours       = "выбранное время вне рабочих часов"
	msgRemoteStore        = "хранилище записей недоступно"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	businessID := mux.Vars(r)["businessId"]

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session, businessID))
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, bookAppointment.ErrForbidden):
			h.logger.Warn("POST /businesses/{id}/appointments - Forbidden: user_id=%s, role=%s", session.UserID, session.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookAppointment.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/appointments - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookAppointment.ErrPastDate):
			h.logger.Warn("POST /businesses/{id}/appointments - Past date: business_id=%s", businessID)
			handlers.RespondUnprocessable(w, msgPastDate)

		case errors.Is(err, bookAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /businesses/{id}/appointments - Outside business hours: business_id=%s", businessID)
			handlers.RespondUnprocessable(w, msgOutsideHours)

		case errors.Is(err, bookAppointment.ErrRemoteStore):
			h.logger.Error("POST /businesses/{id}/appointments - Remote store error: %v", err)
			handlers.RespondBadGateway(w, msgRemoteStore)

		default:
			h.logger.Error("POST /businesses/{id}/appointments - Failed to book: business_id=%s, user_id=%s, error=%v",
				businessID, session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/appointments - Appointment created: id=%s, business_id=%s", result.ID, businessID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
