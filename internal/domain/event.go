package domain

import "time"

// AppointmentEvent is one entry of the local audit journal.
// The journal records what this service did; the remote store stays authoritative.
type AppointmentEvent struct {
	ID            int64
	AppointmentID string
	BusinessID    string
	ActorID       string
	ActorRole     ActorRole
	Action        string
	FromStatus    *AppointmentStatus // nil for created
	ToStatus      *AppointmentStatus // nil for deleted
	OccurredAt    time.Time
}
