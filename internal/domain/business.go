package domain

import (
	"fmt"
	"time"
)

// BusinessHours is a single daily open/close window applied to all seven days.
// Hours are fractional: 9.5 means 09:30.
type BusinessHours struct {
	OpeningHour float64
	ClosingHour float64
	Location    *time.Location // nil = candidate's own location
}

// Validate checks the window is inside a day and does not span midnight
func (h BusinessHours) Validate() error {
	if h.OpeningHour < MinHour || h.OpeningHour > MaxHour {
		return fmt.Errorf("opening hour %.2f out of range", h.OpeningHour)
	}
	if h.ClosingHour < MinHour || h.ClosingHour > MaxHour {
		return fmt.Errorf("closing hour %.2f out of range", h.ClosingHour)
	}
	if h.OpeningHour > h.ClosingHour {
		return fmt.Errorf("opening hour %.2f is after closing hour %.2f", h.OpeningHour, h.ClosingHour)
	}
	return nil
}

// Contains reports whether a fractional hour falls inside the window, bounds included
func (h BusinessHours) Contains(hour float64) bool {
	return hour >= h.OpeningHour && hour <= h.ClosingHour
}

// Local converts t to the business wall clock
func (h BusinessHours) Local(t time.Time) time.Time {
	if h.Location == nil {
		return t
	}
	return t.In(h.Location)
}

// Business represents the public profile of a business as stored remotely
type Business struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Address     *string
	Phone       *string
	Hours       BusinessHours
	Features    FeatureSet
}

// HourOfDay returns the time-of-day component of t as a fractional hour (14:30 -> 14.5)
func HourOfDay(t time.Time) float64 {
	return float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/float64(time.Hour)
}

// FormatHour renders a fractional hour as HH:MM
func FormatHour(hour float64) string {
	minutes := int(hour*60 + 0.5)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
