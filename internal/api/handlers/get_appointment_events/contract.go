package get_appointment_events

import (
	"context"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/service/appointments/models"
)

type AppointmentService interface {
	Events(ctx context.Context, session *domain.Session, businessID, appointmentID string) (*models.EventListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
