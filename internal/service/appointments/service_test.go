package appointments

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/integrations/remotestore"
	"github.com/sudeal/Nokta-sub000/pkg/logger"
	"github.com/sudeal/Nokta-sub000/pkg/ptr"
)

type fakeStore struct {
	business     *domain.Business
	appointments []*domain.Appointment
	fetchErr     error
	fetchedOn    *time.Time
}

func (f *fakeStore) GetBusiness(_ context.Context, businessID string) (*domain.Business, error) {
	if f.business == nil || f.business.ID != businessID {
		return nil, remotestore.ErrNotFound
	}
	return f.business, nil
}

func (f *fakeStore) FetchAppointments(_ context.Context, _ string) ([]*domain.Appointment, error) {
	return f.appointments, f.fetchErr
}

func (f *fakeStore) FetchAppointmentsOn(_ context.Context, _ string, date time.Time) ([]*domain.Appointment, error) {
	f.fetchedOn = &date
	return f.appointments, f.fetchErr
}

type fakeJournal struct {
	events []*domain.AppointmentEvent
	err    error
}

func (f *fakeJournal) ListByAppointment(_ context.Context, _, _ string) ([]*domain.AppointmentEvent, error) {
	return f.events, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	now      = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	owner    = &domain.Session{UserID: "owner-1", Role: domain.RoleBusiness, BusinessID: "biz-1"}
	customer = &domain.Session{UserID: "cust-1", Role: domain.RoleCustomer}
)

func newBusiness(features ...domain.Feature) *domain.Business {
	return &domain.Business{
		ID:       "biz-1",
		Hours:    domain.BusinessHours{OpeningHour: 9, ClosingHour: 18, Location: time.UTC},
		Features: domain.NewFeatureSet(features...),
	}
}

func sample() []*domain.Appointment {
	return []*domain.Appointment{
		{ID: "p-today", CustomerID: "c-1", BusinessID: "biz-1", Status: domain.StatusPending, ScheduledAt: time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)},
		{ID: "acc-3d", CustomerID: "c-2", BusinessID: "biz-1", Status: domain.StatusAccepted, ScheduledAt: time.Date(2024, 5, 29, 11, 0, 0, 0, time.UTC)},
		{ID: "done-yday", CustomerID: "c-3", BusinessID: "biz-1", Status: domain.StatusCompleted, ScheduledAt: time.Date(2024, 5, 31, 11, 0, 0, 0, time.UTC), Note: ptr.Ptr("ok")},
		{ID: "acc-today", CustomerID: "c-4", BusinessID: "biz-1", Status: domain.StatusAccepted, ScheduledAt: time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC)},
	}
}

func newService(store *fakeStore, journal EventJournal) *Service {
	return NewService(store, journal, logger.Nop()).WithTimeProvider(fixedTime{now: now})
}

func TestDashboard(t *testing.T) {
	svc := newService(&fakeStore{business: newBusiness(), appointments: sample()}, nil)

	resp, err := svc.Dashboard(context.Background(), owner, "biz-1", nil)
	require.NoError(t, err)

	require.Len(t, resp.Pending, 1)
	assert.Equal(t, "p-today", resp.Pending[0].ID)
	assert.Equal(t, []string{"accept", "reject"}, resp.Pending[0].AllowedActions)

	require.Len(t, resp.Today, 1)
	assert.Equal(t, "acc-today", resp.Today[0].ID)

	require.Len(t, resp.Expired, 1)
	assert.Equal(t, "acc-3d", resp.Expired[0].ID)
	assert.True(t, resp.Expired[0].Expired)
	assert.Equal(t, []string{"complete", "delete"}, resp.Expired[0].AllowedActions)

	require.Len(t, resp.All, 3)
	assert.Equal(t, "acc-3d", resp.All[0].ID, "ascending by time")
	assert.Equal(t, "done-yday", resp.All[1].ID)
	assert.Equal(t, "acc-today", resp.All[2].ID)
	assert.Equal(t, []string{"delete"}, resp.All[1].AllowedActions)
	assert.Nil(t, resp.Date)
}

func TestCustomerAppointments_OwnOnly(t *testing.T) {
	list := append(sample(),
		&domain.Appointment{ID: "mine-acc", CustomerID: "cust-1", BusinessID: "biz-1", Status: domain.StatusAccepted, ScheduledAt: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)},
		&domain.Appointment{ID: "mine-pending", CustomerID: "cust-1", BusinessID: "biz-1", Status: domain.StatusPending, ScheduledAt: time.Date(2024, 6, 4, 12, 0, 0, 0, time.UTC)},
	)
	svc := newService(&fakeStore{business: newBusiness(), appointments: list}, nil)

	resp, err := svc.CustomerAppointments(context.Background(), customer, "biz-1")
	require.NoError(t, err)
	assert.Equal(t, "biz-1", resp.BusinessID)

	require.Len(t, resp.Pending, 1)
	assert.Equal(t, "mine-pending", resp.Pending[0].ID)
	assert.Empty(t, resp.Pending[0].AllowedActions)

	require.Len(t, resp.All, 1)
	assert.Equal(t, "mine-acc", resp.All[0].ID)
	assert.Equal(t, []string{"delete"}, resp.All[0].AllowedActions)
	assert.Empty(t, resp.Today)
	assert.Empty(t, resp.Expired)
}

func TestCustomerAppointments_Errors(t *testing.T) {
	svc := newService(&fakeStore{business: newBusiness(), appointments: sample()}, nil)

	_, err := svc.CustomerAppointments(context.Background(), owner, "biz-1")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.CustomerAppointments(context.Background(), nil, "biz-1")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.CustomerAppointments(context.Background(), customer, "biz-404")
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	failing := newService(&fakeStore{business: newBusiness(), fetchErr: errors.New("boom")}, nil)
	_, err = failing.CustomerAppointments(context.Background(), customer, "biz-1")
	assert.ErrorIs(t, err, ErrRemoteStore)
}

func TestDashboard_ByDate(t *testing.T) {
	store := &fakeStore{business: newBusiness(), appointments: sample()[:1]}
	svc := newService(store, nil)
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Dashboard(context.Background(), owner, "biz-1", &day)
	require.NoError(t, err)
	require.NotNil(t, store.fetchedOn)
	require.NotNil(t, resp.Date)
	assert.Equal(t, "2024-06-01", *resp.Date)
}

func TestDashboard_Errors(t *testing.T) {
	t.Run("customer", func(t *testing.T) {
		svc := newService(&fakeStore{business: newBusiness()}, nil)
		_, err := svc.Dashboard(context.Background(), customer, "biz-1", nil)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("no session", func(t *testing.T) {
		svc := newService(&fakeStore{business: newBusiness()}, nil)
		_, err := svc.Dashboard(context.Background(), nil, "biz-1", nil)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("business missing", func(t *testing.T) {
		svc := newService(&fakeStore{}, nil)
		_, err := svc.Dashboard(context.Background(), owner, "biz-1", nil)
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("fetch failed", func(t *testing.T) {
		svc := newService(&fakeStore{business: newBusiness(), fetchErr: remotestore.ErrUnavailable}, nil)
		_, err := svc.Dashboard(context.Background(), owner, "biz-1", nil)
		assert.ErrorIs(t, err, ErrRemoteStore)
	})
}

func TestStatistics(t *testing.T) {
	svc := newService(&fakeStore{business: newBusiness(domain.FeatureStatistics), appointments: sample()}, nil)

	resp, err := svc.Statistics(context.Background(), owner, "biz-1")
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 1, resp.Pending)
	assert.Equal(t, 1, resp.Today)
	assert.Equal(t, 1, resp.Expired)
	assert.Equal(t, 2, resp.ByStatus["accepted"])
	assert.Equal(t, 1, resp.ByStatus["completed"])
	assert.Equal(t, 0, resp.ByStatus["rejected"])
}

func TestStatistics_FeatureDisabled(t *testing.T) {
	svc := newService(&fakeStore{business: newBusiness(domain.FeatureReviews), appointments: sample()}, nil)

	_, err := svc.Statistics(context.Background(), owner, "biz-1")
	assert.ErrorIs(t, err, ErrFeatureDisabled)

	err = svc.Export(context.Background(), owner, "biz-1", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrFeatureDisabled)
}

func TestExport(t *testing.T) {
	svc := newService(&fakeStore{business: newBusiness(domain.FeatureStatistics), appointments: sample()}, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), owner, "biz-1", &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus the all bucket")
	assert.Equal(t, exportColumns, rows[0])
	assert.Equal(t, "acc-3d", rows[1][0])
	assert.Equal(t, "2024-05-31", rows[2][2])
	assert.Equal(t, "ok", rows[2][5])
}

func TestEvents(t *testing.T) {
	journal := &fakeJournal{events: []*domain.AppointmentEvent{
		{ID: 1, AppointmentID: "a-1", ActorID: "cust-1", ActorRole: domain.RoleCustomer, Action: "created", ToStatus: ptr.Ptr(domain.StatusPending)},
		{ID: 2, AppointmentID: "a-1", ActorID: "owner-1", ActorRole: domain.RoleBusiness, Action: "accept", FromStatus: ptr.Ptr(domain.StatusPending), ToStatus: ptr.Ptr(domain.StatusAccepted)},
	}}
	svc := newService(&fakeStore{business: newBusiness()}, journal)

	resp, err := svc.Events(context.Background(), owner, "biz-1", "a-1")
	require.NoError(t, err)
	require.Len(t, resp.Events, 2)
	assert.Nil(t, resp.Events[0].FromStatus)
	assert.Equal(t, "accepted", *resp.Events[1].ToStatus)
}

func TestEvents_Errors(t *testing.T) {
	t.Run("journal disabled", func(t *testing.T) {
		svc := newService(&fakeStore{}, nil)
		_, err := svc.Events(context.Background(), owner, "biz-1", "a-1")
		assert.ErrorIs(t, err, ErrJournalDisabled)
	})

	t.Run("journal error", func(t *testing.T) {
		svc := newService(&fakeStore{}, &fakeJournal{err: errors.New("db down")})
		_, err := svc.Events(context.Background(), owner, "biz-1", "a-1")
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("foreign business", func(t *testing.T) {
		svc := newService(&fakeStore{}, &fakeJournal{})
		_, err := svc.Events(context.Background(), owner, "biz-2", "a-1")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
