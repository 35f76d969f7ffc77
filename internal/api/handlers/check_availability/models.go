package check_availability

import "time"

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	ScheduledAt time.Time `json:"scheduledAt"` // RFC3339
}
