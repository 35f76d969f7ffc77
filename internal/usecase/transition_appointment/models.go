package transition_appointment

import (
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/scheduling"
)

// Request модель запроса на действие над записью
type Request struct {
	Session           *domain.Session
	BusinessID        string
	AppointmentID     string
	Action            scheduling.Action
	ConfirmationToken string // пусто на первом шаге подтверждения
}

// Response результат действия.
// Если ConfirmationRequired, действие не выполнено и нужно повторить запрос с токеном.
type Response struct {
	ConfirmationRequired bool
	ConfirmationToken    string
	ConfirmationExpires  time.Time

	Action      scheduling.Action
	Deleted     bool
	Appointment *domain.Appointment // nil после удаления и на первом шаге
}
