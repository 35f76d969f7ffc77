package export_appointments

import (
	"context"
	"io"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

type AppointmentService interface {
	Export(ctx context.Context, session *domain.Session, businessID string, out io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
