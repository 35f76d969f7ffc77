package create_appointment

import (
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	bookAppointment "github.com/sudeal/Nokta-sub000/internal/usecase/book_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ScheduledAt time.Time `json:"scheduledAt"` // RFC3339
	Note        *string   `json:"note,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(session *domain.Session, businessID string) *bookAppointment.Request {
	return &bookAppointment.Request{
		Session:     session,
		BusinessID:  businessID,
		ScheduledAt: r.ScheduledAt,
		Note:        r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		BusinessID:  r.BusinessID,
		ScheduledAt: r.ScheduledAt,
		Note:        r.Note,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}
