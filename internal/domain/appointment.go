package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusAccepted  AppointmentStatus = "accepted"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a booking record held by the remote store
type Appointment struct {
	ID          string
	CustomerID  string
	BusinessID  string
	ScheduledAt time.Time // business local wall-clock time
	Note        *string
	Status      AppointmentStatus
	CreatedAt   time.Time // display only, never used for scheduling
}

// IsPending returns true if the appointment still awaits a business decision
func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// IsCompleted returns true if the appointment was fulfilled
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// BelongsTo returns true if the appointment was booked by the given customer
func (a *Appointment) BelongsTo(customerID string) bool {
	return a.CustomerID == customerID
}

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseAppointmentStatus converts a raw string into an AppointmentStatus
func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	s := AppointmentStatus(raw)
	return s, s.IsValid()
}
