package book_appointment

import (
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	Session     *domain.Session // текущий пользователь
	BusinessID  string          // бизнес, к которому записываются
	ScheduledAt time.Time       // желаемое время записи
	Note        *string         // комментарий клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          string
	CustomerID  string
	BusinessID  string
	ScheduledAt time.Time // в часовом поясе бизнеса
	Note        *string
	Status      string
	CreatedAt   time.Time
}

func toResponse(a *domain.Appointment, hours domain.BusinessHours) *Response {
	return &Response{
		ID:          a.ID,
		CustomerID:  a.CustomerID,
		BusinessID:  a.BusinessID,
		ScheduledAt: hours.Local(a.ScheduledAt),
		Note:        a.Note,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}
