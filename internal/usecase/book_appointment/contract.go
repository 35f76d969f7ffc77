package book_appointment

import (
	"context"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

// RemoteStore интерфейс клиента внешнего хранилища
type RemoteStore interface {
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
	CreateAppointment(ctx context.Context, customerID, businessID string, scheduledAt time.Time, note *string) (*domain.Appointment, error)
}

// EventJournal журнал аудита (может отсутствовать)
type EventJournal interface {
	Append(ctx context.Context, event *domain.AppointmentEvent) error
}

// Metrics учет отклоненных попыток записи
type Metrics interface {
	IncBookingRejection(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
