package transition_appointment

import (
	"context"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/infra/confirmations"
)

// RemoteStore интерфейс клиента внешнего хранилища
type RemoteStore interface {
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
	FetchAppointments(ctx context.Context, businessID string) ([]*domain.Appointment, error)
	AcceptAppointment(ctx context.Context, businessID, appointmentID string) (*domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

// Confirmations выдача и погашение токенов двухшагового подтверждения
type Confirmations interface {
	Issue(ctx context.Context, subject confirmations.Subject) (*confirmations.Confirmation, error)
	Consume(ctx context.Context, token string, subject confirmations.Subject) error
}

// EventJournal журнал аудита (может отсутствовать)
type EventJournal interface {
	Append(ctx context.Context, event *domain.AppointmentEvent) error
}

// Metrics учет выполненных действий
type Metrics interface {
	IncTransition(action, outcome string)
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
