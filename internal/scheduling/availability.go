package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

// RejectionReason is the machine-readable cause of a failed bookability check
type RejectionReason string

const (
	ReasonPastDate             RejectionReason = "past_date"
	ReasonOutsideBusinessHours RejectionReason = "outside_business_hours"
)

// IsBookable decides whether candidate can be booked within hours at the moment now.
// The past check runs first, so a past candidate outside hours reports ErrPastDate.
// Existing appointments are not consulted: overlapping bookings are allowed.
func IsBookable(candidate time.Time, hours domain.BusinessHours, now time.Time) error {
	if candidate.IsZero() {
		return ErrInvalidCandidate
	}

	if err := hours.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	if candidate.Before(now) {
		return ErrPastDate
	}

	hour := domain.HourOfDay(hours.Local(candidate))
	if !hours.Contains(hour) {
		return fmt.Errorf("%w: %s not within %s-%s", ErrOutsideBusinessHours,
			hours.Local(candidate).Format(domain.TimeFormat),
			domain.FormatHour(hours.OpeningHour), domain.FormatHour(hours.ClosingHour))
	}

	return nil
}

// ReasonOf maps a validator error to its rejection reason
func ReasonOf(err error) (RejectionReason, bool) {
	switch {
	case errors.Is(err, ErrPastDate):
		return ReasonPastDate, true
	case errors.Is(err, ErrOutsideBusinessHours):
		return ReasonOutsideBusinessHours, true
	default:
		return "", false
	}
}
