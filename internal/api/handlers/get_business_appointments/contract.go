package get_business_appointments

import (
	"context"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/service/appointments/models"
)

type AppointmentService interface {
	Dashboard(ctx context.Context, session *domain.Session, businessID string, date *time.Time) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
