package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudeal/Nokta-sub000/internal/api/middleware"
	"github.com/sudeal/Nokta-sub000/internal/domain"
	bookAppointment "github.com/sudeal/Nokta-sub000/internal/usecase/book_appointment"
	"github.com/sudeal/Nokta-sub000/pkg/logger"
)

type fakeUseCase struct {
	got *bookAppointment.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &bookAppointment.Response{
		ID:          "a-1",
		CustomerID:  req.Session.UserID,
		BusinessID:  req.BusinessID,
		ScheduledAt: req.ScheduledAt,
		Note:        req.Note,
		Status:      "pending",
	}, nil
}

var customer = &domain.Session{UserID: "cust-1", Role: domain.RoleCustomer}

func serve(uc *fakeUseCase, session *domain.Session, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/businesses/biz-1/appointments", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"businessId": "biz-1"})
	if session != nil {
		r = r.WithContext(middleware.WithSession(r.Context(), session))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, r)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, customer, `{"scheduledAt":"2024-06-01T17:30:00Z","note":"hi"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "biz-1", uc.got.BusinessID)
	assert.Same(t, customer, uc.got.Session)
	assert.True(t, uc.got.ScheduledAt.Equal(time.Date(2024, 6, 1, 17, 30, 0, 0, time.UTC)))

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "a-1", body.ID)
	assert.Equal(t, "pending", body.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{bookAppointment.ErrInvalidInput, http.StatusBadRequest},
		{bookAppointment.ErrForbidden, http.StatusForbidden},
		{bookAppointment.ErrBusinessNotFound, http.StatusNotFound},
		{bookAppointment.ErrPastDate, http.StatusUnprocessableEntity},
		{bookAppointment.ErrOutsideBusinessHours, http.StatusUnprocessableEntity},
		{bookAppointment.ErrRemoteStore, http.StatusBadGateway},
		{bookAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, customer, `{"scheduledAt":"2024-06-01T17:30:00Z"}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_NoSession(t *testing.T) {
	rec := serve(&fakeUseCase{}, nil, `{"scheduledAt":"2024-06-01T17:30:00Z"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_BadBody(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, customer, `{"scheduledAt":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
