package appointments

import (
	"context"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

// RemoteStore интерфейс клиента внешнего хранилища
type RemoteStore interface {
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
	FetchAppointments(ctx context.Context, businessID string) ([]*domain.Appointment, error)
	FetchAppointmentsOn(ctx context.Context, businessID string, date time.Time) ([]*domain.Appointment, error)
}

// EventJournal журнал аудита
type EventJournal interface {
	ListByAppointment(ctx context.Context, businessID, appointmentID string) ([]*domain.AppointmentEvent, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
