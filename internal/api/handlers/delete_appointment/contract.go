package delete_appointment

import (
	"context"

	transitionAppointment "github.com/sudeal/Nokta-sub000/internal/usecase/transition_appointment"
)

type TransitionUseCase interface {
	Execute(ctx context.Context, req *transitionAppointment.Request) (*transitionAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
