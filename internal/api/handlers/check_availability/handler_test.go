package check_availability

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

	"github.com/sudeal/Nokta-sub000/internal/service/businesses"
	"github.com/sudeal/Nokta-sub000/internal/service/businesses/models"
	"github.com/sudeal/Nokta-sub000/pkg/logger"
	"github.com/sudeal/Nokta-sub000/pkg/ptr"
)

type fakeService struct {
	got  time.Time
	resp *models.AvailabilityResponse
	err  error
}

func (f *fakeService) CheckAvailability(_ context.Context, _ string, scheduledAt time.Time) (*models.AvailabilityResponse, error) {
	f.got = scheduledAt
	return f.resp, f.err
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/businesses/biz-1/availability", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"businessId": "biz-1"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, r)
	return rec
}

func TestHandle_NotBookable(t *testing.T) {
	svc := &fakeService{resp: &models.AvailabilityResponse{Bookable: false, Reason: ptr.Ptr("outside_business_hours")}}

	rec := serve(svc, `{"scheduledAt":"2024-06-01T18:30:00Z"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.got.Equal(time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["bookable"])
	assert.Equal(t, "outside_business_hours", body["reason"])
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"scheduledAt":"tomorrow"}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: businesses.ErrBusinessNotFound}, `{"scheduledAt":"2024-06-01T12:00:00Z"}`).Code)
	assert.Equal(t, http.StatusBadGateway, serve(&fakeService{err: businesses.ErrRemoteStore}, `{"scheduledAt":"2024-06-01T12:00:00Z"}`).Code)
}
