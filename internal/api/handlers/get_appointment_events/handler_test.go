package get_appointment_events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudeal/Nokta-sub000/internal/api/middleware"
	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/service/appointments"
	"github.com/sudeal/Nokta-sub000/internal/service/appointments/models"
	"github.com/sudeal/Nokta-sub000/pkg/logger"
)

type fakeService struct {
	gotAppointment string
	resp           *models.EventListResponse
	err            error
}

func (f *fakeService) Events(_ context.Context, _ *domain.Session, _, appointmentID string) (*models.EventListResponse, error) {
	f.gotAppointment = appointmentID
	return f.resp, f.err
}

var owner = &domain.Session{UserID: "owner-1", Role: domain.RoleBusiness, BusinessID: "biz-1"}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/biz-1/appointments/a-1/events", nil)
	r = mux.SetURLVars(r, map[string]string{"businessId": "biz-1", "appointmentId": "a-1"})
	r = r.WithContext(middleware.WithSession(r.Context(), owner))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, r)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{resp: &models.EventListResponse{
		AppointmentID: "a-1",
		Events:        []*models.EventResponse{{ID: 1, Action: "created"}},
	}}

	rec := serve(svc)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a-1", svc.gotAppointment)

	var body models.EventListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Events, 1)
	assert.Equal(t, "created", body.Events[0].Action)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: appointments.ErrAccessDenied}).Code)
	assert.Equal(t, http.StatusNotImplemented, serve(&fakeService{err: appointments.ErrJournalDisabled}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: appointments.ErrInternal}).Code)
}
