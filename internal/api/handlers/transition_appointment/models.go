package transition_appointment

import (
	"time"

	transitionAppointment "github.com/sudeal/Nokta-sub000/internal/usecase/transition_appointment"
)

// TransitionRequest HTTP request model (тело необязательно)
type TransitionRequest struct {
	ConfirmationToken string `json:"confirmationToken,omitempty"`
}

// ConfirmationResponse ответ первого шага подтверждения
type ConfirmationResponse struct {
	ConfirmationRequired bool      `json:"confirmationRequired"`
	ConfirmationToken    string    `json:"confirmationToken"`
	ExpiresAt            time.Time `json:"expiresAt"`
	Action               string    `json:"action"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	BusinessID  string    `json:"businessId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Note        *string   `json:"note,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromConfirmation конвертирует первый шаг подтверждения
func FromConfirmation(r *transitionAppointment.Response) *ConfirmationResponse {
	return &ConfirmationResponse{
		ConfirmationRequired: true,
		ConfirmationToken:    r.ConfirmationToken,
		ExpiresAt:            r.ConfirmationExpires,
		Action:               string(r.Action),
	}
}

// FromUseCaseResponse конвертирует обновленную запись
func FromUseCaseResponse(r *transitionAppointment.Response) *AppointmentResponse {
	a := r.Appointment
	return &AppointmentResponse{
		ID:          a.ID,
		CustomerID:  a.CustomerID,
		BusinessID:  a.BusinessID,
		ScheduledAt: a.ScheduledAt,
		Note:        a.Note,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}
