package check_availability

import (
	"context"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/service/businesses/models"
)

type BusinessService interface {
	CheckAvailability(ctx context.Context, businessID string, scheduledAt time.Time) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
