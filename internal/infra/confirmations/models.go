package confirmations

import "time"

// Subject то, что подтверждается: конкретное действие конкретного пользователя над записью
type Subject struct {
	ActorID       string `json:"actorId"`
	BusinessID    string `json:"businessId"`
	AppointmentID string `json:"appointmentId"`
	Action        string `json:"action"`
}

// Confirmation выданный одноразовый токен
type Confirmation struct {
	Token     string    `json:"token"`
	Subject   Subject   `json:"subject"`
	ExpiresAt time.Time `json:"expiresAt"`
}
