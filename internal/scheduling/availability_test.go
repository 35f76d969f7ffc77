package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIsBookable(t *testing.T) {
	hours := domain.BusinessHours{OpeningHour: 9, ClosingHour: 18}
	now := at("2024-06-01T10:00")

	tests := []struct {
		name      string
		candidate time.Time
		hours     domain.BusinessHours
		wantErr   error
	}{
		{"inside hours later today", at("2024-06-01T17:30"), hours, nil},
		{"exactly at closing", at("2024-06-01T18:00"), hours, nil},
		{"exactly at opening tomorrow", at("2024-06-02T09:00"), hours, nil},
		{"exactly now", now, hours, nil},
		{"after closing", at("2024-06-01T18:30"), hours, ErrOutsideBusinessHours},
		{"before opening tomorrow", at("2024-06-02T08:59"), hours, ErrOutsideBusinessHours},
		{"yesterday", at("2024-05-31T12:00"), hours, ErrPastDate},
		{"earlier today", at("2024-06-01T09:30"), hours, ErrPastDate},
		{"past and outside hours reports past date", at("2024-05-31T22:00"), hours, ErrPastDate},
		{"half hour opening", at("2024-06-02T09:15"), domain.BusinessHours{OpeningHour: 9.5, ClosingHour: 18}, ErrOutsideBusinessHours},
		{"half hour opening boundary", at("2024-06-02T09:30"), domain.BusinessHours{OpeningHour: 9.5, ClosingHour: 18}, nil},
		{"overnight window rejected", at("2024-06-02T23:00"), domain.BusinessHours{OpeningHour: 22, ClosingHour: 2}, ErrInvalidHours},
		{"zero candidate", time.Time{}, hours, ErrInvalidCandidate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IsBookable(tt.candidate, tt.hours, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsBookable_UsesBusinessLocation(t *testing.T) {
	istanbul, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	hours := domain.BusinessHours{OpeningHour: 9, ClosingHour: 18, Location: istanbul}
	now := time.Date(2024, 6, 1, 5, 0, 0, 0, time.UTC)

	// 14:30 UTC = 17:30 in Istanbul (UTC+3)
	assert.NoError(t, IsBookable(time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC), hours, now))
	// 16:00 UTC = 19:00 in Istanbul
	assert.ErrorIs(t, IsBookable(time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC), hours, now), ErrOutsideBusinessHours)
}

// Accepts iff opening <= h <= closing and candidate >= now.
func TestIsBookable_Property(t *testing.T) {
	now := at("2024-06-01T00:00")
	windows := []domain.BusinessHours{
		{OpeningHour: 0, ClosingHour: 24},
		{OpeningHour: 9, ClosingHour: 18},
		{OpeningHour: 9.5, ClosingHour: 17.25},
		{OpeningHour: 12, ClosingHour: 12},
	}

	for _, hours := range windows {
		for offset := -24 * 60; offset <= 48*60; offset += 15 {
			candidate := now.Add(time.Duration(offset) * time.Minute)
			h := domain.HourOfDay(candidate)
			want := !candidate.Before(now) && h >= hours.OpeningHour && h <= hours.ClosingHour

			err := IsBookable(candidate, hours, now)
			assert.Equal(t, want, err == nil, "hours=%v candidate=%s err=%v", hours, candidate, err)
		}
	}
}

func TestReasonOf(t *testing.T) {
	now := at("2024-06-01T10:00")
	hours := domain.BusinessHours{OpeningHour: 9, ClosingHour: 18}

	reason, ok := ReasonOf(IsBookable(at("2024-05-31T12:00"), hours, now))
	assert.True(t, ok)
	assert.Equal(t, ReasonPastDate, reason)

	reason, ok = ReasonOf(IsBookable(at("2024-06-01T18:30"), hours, now))
	assert.True(t, ok)
	assert.Equal(t, ReasonOutsideBusinessHours, reason)

	_, ok = ReasonOf(ErrInvalidHours)
	assert.False(t, ok)
}
