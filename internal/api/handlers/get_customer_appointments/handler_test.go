package get_customer_appointments

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
	gotSession  *domain.Session
	gotBusiness string
	resp        *models.DashboardResponse
	err         error
}

func (f *fakeService) CustomerAppointments(_ context.Context, session *domain.Session, businessID string) (*models.DashboardResponse, error) {
	f.gotSession = session
	f.gotBusiness = businessID
	return f.resp, f.err
}

var customer = &domain.Session{UserID: "cust-1", Role: domain.RoleCustomer}

func serve(svc *fakeService, session *domain.Session) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/biz-1/appointments/mine", nil)
	r = mux.SetURLVars(r, map[string]string{"businessId": "biz-1"})
	if session != nil {
		r = r.WithContext(middleware.WithSession(r.Context(), session))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, r)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{resp: &models.DashboardResponse{
		BusinessID: "biz-1",
		All: []*models.AppointmentResponse{
			{ID: "a-1", CustomerID: "cust-1", Status: "accepted", AllowedActions: []string{"delete"}},
		},
	}}

	rec := serve(svc, customer)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, customer, svc.gotSession)
	assert.Equal(t, "biz-1", svc.gotBusiness)

	var body models.DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.All, 1)
	assert.Equal(t, []string{"delete"}, body.All[0].AllowedActions)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serve(&fakeService{}, nil).Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: appointments.ErrAccessDenied}, customer).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: appointments.ErrBusinessNotFound}, customer).Code)
	assert.Equal(t, http.StatusBadGateway, serve(&fakeService{err: appointments.ErrRemoteStore}, customer).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: appointments.ErrInternal}, customer).Code)
}
