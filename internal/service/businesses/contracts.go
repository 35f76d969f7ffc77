package businesses

import (
	"context"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

// RemoteStore интерфейс клиента внешнего хранилища
type RemoteStore interface {
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
}

// Metrics учет отклоненных проверок доступности
type Metrics interface {
	IncBookingRejection(reason string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
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
