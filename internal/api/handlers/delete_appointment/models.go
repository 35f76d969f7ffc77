package delete_appointment

import "time"

// ConfirmationResponse ответ первого шага подтверждения удаления
type ConfirmationResponse struct {
	ConfirmationRequired bool      `json:"confirmationRequired"`
	ConfirmationToken    string    `json:"confirmationToken"`
	ExpiresAt            time.Time `json:"expiresAt"`
	Action               string    `json:"action"`
}
