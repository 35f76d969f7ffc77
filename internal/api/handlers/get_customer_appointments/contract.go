package get_customer_appointments

import (
	"context"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/service/appointments/models"
)

type AppointmentService interface {
	CustomerAppointments(ctx context.Context, session *domain.Session, businessID string) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
