package export_appointments

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sudeal/Nokta-sub000/internal/api/handlers"
	"github.com/sudeal/Nokta-sub000/internal/api/middleware"
	"github.com/sudeal/Nokta-sub000/internal/service/appointments"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

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

// Handle GET /api/v1/businesses/{businessId}/appointments/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	businessID := mux.Vars(r)["businessId"]

	// Файл собирается целиком, чтобы ошибка не оборвала уже начатый ответ
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), session, businessID, &buf); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/export - Access denied: business_id=%s, user_id=%s", businessID, session.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrFeatureDisabled):
			handlers.RespondForbidden(w, msgFeatureDisabled)

		case errors.Is(err, appointments.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrRemoteStore):
			h.logger.Error("GET /appointments/export - Remote store error: %v", err)
			handlers.RespondBadGateway(w, msgRemoteStore)

		default:
			h.logger.Error("GET /appointments/export - Failed: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="appointments-%s.xlsx"`, businessID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /appointments/export - Write interrupted: business_id=%s, error=%v", businessID, err)
		return
	}

	h.logger.Info("GET /appointments/export - Exported: business_id=%s", businessID)
}
