package businesses

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/integrations/remotestore"
	"github.com/sudeal/Nokta-sub000/pkg/logger"
	"github.com/sudeal/Nokta-sub000/pkg/ptr"
)

type fakeStore struct {
	business *domain.Business
	err      error
}

func (f *fakeStore) GetBusiness(_ context.Context, _ string) (*domain.Business, error) {
	return f.business, f.err
}

type fakeMetrics struct{ reasons []string }

func (f *fakeMetrics) IncBookingRejection(reason string) { f.reasons = append(f.reasons, reason) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func cafe() *domain.Business {
	return &domain.Business{
		ID:       "biz-1",
		Name:     "Cafe",
		Address:  ptr.Ptr("Main st. 1"),
		Phone:    ptr.Ptr("+90 555"),
		Hours:    domain.BusinessHours{OpeningHour: 9, ClosingHour: 18.5, Location: time.UTC},
		Features: domain.NewFeatureSet(domain.FeatureStatistics, domain.FeatureDirections, domain.FeatureMenuPrices, domain.FeatureMessaging),
	}
}

func TestPage_SectionsFollowFeatures(t *testing.T) {
	svc := NewService(&fakeStore{business: cafe()}, nil, logger.Nop())

	page, err := svc.Page(context.Background(), nil, "biz-1")
	require.NoError(t, err)

	keys := make([]string, 0, len(page.Sections))
	for _, s := range page.Sections {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"menu_prices", "messaging", "directions"}, keys, "page order, statistics hidden")
	assert.Equal(t, "+90 555", *page.Sections[1].Phone)
	assert.Equal(t, "Main st. 1", *page.Sections[2].Address)
	assert.Equal(t, "09:00", page.Hours.Opening)
	assert.Equal(t, "18:30", page.Hours.Closing)
	assert.True(t, page.Bookable)
}

func TestPage_LogsSortedFeatures(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter(&buf, "debug")
	require.NoError(t, err)
	svc := NewService(&fakeStore{business: cafe()}, nil, log)

	_, err = svc.Page(context.Background(), nil, "biz-1")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "features=[directions menu_prices messaging statistics]")
}

func TestPage_OwnerSeesStatistics(t *testing.T) {
	svc := NewService(&fakeStore{business: cafe()}, nil, logger.Nop())
	owner := &domain.Session{UserID: "owner-1", Role: domain.RoleBusiness, BusinessID: "biz-1"}

	page, err := svc.Page(context.Background(), owner, "biz-1")
	require.NoError(t, err)
	require.Len(t, page.Sections, 4)
	assert.Equal(t, "statistics", page.Sections[3].Key)
	assert.True(t, page.Sections[3].OwnerOnly)
}

func TestPage_NoFeatures(t *testing.T) {
	b := cafe()
	b.Features = domain.NewFeatureSet()
	svc := NewService(&fakeStore{business: b}, nil, logger.Nop())

	page, err := svc.Page(context.Background(), nil, "biz-1")
	require.NoError(t, err)
	assert.Empty(t, page.Sections)
}

func TestPage_Errors(t *testing.T) {
	_, err := NewService(&fakeStore{err: remotestore.ErrNotFound}, nil, logger.Nop()).Page(context.Background(), nil, "biz-x")
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = NewService(&fakeStore{err: remotestore.ErrUnavailable}, nil, logger.Nop()).Page(context.Background(), nil, "biz-1")
	assert.ErrorIs(t, err, ErrRemoteStore)

	_, err = NewService(&fakeStore{}, nil, logger.Nop()).Page(context.Background(), nil, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckAvailability(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		bookable bool
		reason   string
	}{
		{"same day before closing", time.Date(2024, 6, 1, 17, 30, 0, 0, time.UTC), true, ""},
		{"exactly at closing", time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC), true, ""},
		{"after closing", time.Date(2024, 6, 1, 18, 31, 0, 0, time.UTC), false, "outside_business_hours"},
		{"yesterday", time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC), false, "past_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMetrics{}
			svc := NewService(&fakeStore{business: cafe()}, m, logger.Nop()).WithTimeProvider(fixedTime{now: now})

			resp, err := svc.CheckAvailability(context.Background(), "biz-1", tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.bookable, resp.Bookable)
			if tt.reason == "" {
				assert.Nil(t, resp.Reason)
				assert.Empty(t, m.reasons)
			} else {
				require.NotNil(t, resp.Reason)
				assert.Equal(t, tt.reason, *resp.Reason)
				assert.Equal(t, []string{tt.reason}, m.reasons)
			}
		})
	}
}

func TestCheckAvailability_InvalidInput(t *testing.T) {
	svc := NewService(&fakeStore{business: cafe()}, nil, logger.Nop())
	_, err := svc.CheckAvailability(context.Background(), "biz-1", time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckAvailability_BrokenHours(t *testing.T) {
	b := cafe()
	b.Hours.OpeningHour = 20
	svc := NewService(&fakeStore{business: b}, nil, logger.Nop()).WithTimeProvider(fixedTime{now: now})

	_, err := svc.CheckAvailability(context.Background(), "biz-1", now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrInternal)
}
