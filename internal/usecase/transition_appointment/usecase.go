package transition_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/infra/confirmations"
	"github.com/sudeal/Nokta-sub000/internal/integrations/remotestore"
	"github.com/sudeal/Nokta-sub000/internal/scheduling"
	"github.com/sudeal/Nokta-sub000/pkg/ptr"
)

const (
	outcomeSuccess      = "success"
	outcomeConfirmation = "confirmation_required"
	outcomeRejected     = "rejected"
	outcomeFailed       = "failed"
)

// UseCase use case для смены статуса и удаления записи
type UseCase struct {
	store         RemoteStore
	confirmations Confirmations
	journal       EventJournal
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case. journal и metrics могут быть nil.
func NewUseCase(
	store RemoteStore,
	confirmations Confirmations,
	journal EventJournal,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:         store,
		confirmations: confirmations,
		journal:       journal,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute применяет действие к записи.
// Переход проверяется на актуальном состоянии из хранилища; при ошибке хранилища
// состояние не меняется и повторов нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.observe(req, resp, err)
	}()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("TransitionAppointment: actor=%s (%s), business=%s, appointment=%s, action=%s",
		req.Session.UserID, req.Session.Role, req.BusinessID, req.AppointmentID, req.Action)

	// 2. Получаем бизнес (нужен часовой пояс для окна завершения)
	business, err := uc.store.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, remotestore.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("TransitionAppointment: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrRemoteStore, err)
	}

	// 3. Получаем актуальное состояние записи
	appt, err := uc.findAppointment(ctx, req.BusinessID, req.AppointmentID, business.Hours)
	if err != nil {
		return nil, err
	}

	// 4. Проверяем переход
	now := uc.timeProvider.Now()
	transition, err := scheduling.Guard(appt, req.Action, req.Session, now)
	if err != nil {
		uc.logger.Warn("TransitionAppointment: guard rejected %s on appointment id=%s (%s): %v",
			req.Action, appt.ID, appt.Status, err)
		return nil, mapGuardError(err)
	}

	// 5. Двухшаговое подтверждение для разрушающих действий
	if transition.RequiresConfirmation {
		subject := confirmations.Subject{
			ActorID:       req.Session.UserID,
			BusinessID:    req.BusinessID,
			AppointmentID: appt.ID,
			Action:        string(req.Action),
		}

		if req.ConfirmationToken == "" {
			issued, err := uc.confirmations.Issue(ctx, subject)
			if err != nil {
				uc.logger.Error("TransitionAppointment: failed to issue confirmation: %v", err)
				return nil, fmt.Errorf("%w: failed to issue confirmation: %v", ErrInternal, err)
			}
			uc.logger.Info("TransitionAppointment: confirmation required for %s on appointment id=%s", req.Action, appt.ID)
			return &Response{
				ConfirmationRequired: true,
				ConfirmationToken:    issued.Token,
				ConfirmationExpires:  issued.ExpiresAt,
				Action:               req.Action,
			}, nil
		}

		if err := uc.confirmations.Consume(ctx, req.ConfirmationToken, subject); err != nil {
			if errors.Is(err, confirmations.ErrNotFound) || errors.Is(err, confirmations.ErrMismatch) {
				uc.logger.Warn("TransitionAppointment: invalid confirmation for appointment id=%s: %v", appt.ID, err)
				return nil, fmt.Errorf("%w: %v", ErrInvalidConfirmation, err)
			}
			uc.logger.Error("TransitionAppointment: failed to consume confirmation: %v", err)
			return nil, fmt.Errorf("%w: failed to consume confirmation: %v", ErrInternal, err)
		}
	}

	// 6. Выполняем действие во внешнем хранилище
	updated, err := uc.apply(ctx, req.BusinessID, appt.ID, transition)
	if err != nil {
		if errors.Is(err, remotestore.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("TransitionAppointment: remote store rejected %s on appointment id=%s: %v", req.Action, appt.ID, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrRemoteStore, req.Action, err)
	}

	// 7. Журнал аудита (ошибка не влияет на результат)
	uc.appendEvent(ctx, req, transition)

	uc.logger.Info("TransitionAppointment: %s applied to appointment id=%s", req.Action, appt.ID)

	result := &Response{Action: req.Action, Deleted: transition.Delete}
	if updated != nil {
		result.Appointment = scheduling.Localize([]*domain.Appointment{updated}, business.Hours)[0]
	}
	return result, nil
}

func (uc *UseCase) findAppointment(ctx context.Context, businessID, appointmentID string, hours domain.BusinessHours) (*domain.Appointment, error) {
	appointments, err := uc.store.FetchAppointments(ctx, businessID)
	if err != nil {
		uc.logger.Error("TransitionAppointment: failed to fetch appointments for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrRemoteStore, err)
	}

	for _, a := range scheduling.Localize(appointments, hours) {
		if a.ID == appointmentID {
			return a, nil
		}
	}

	uc.logger.Warn("TransitionAppointment: appointment id=%s not found in business=%s", appointmentID, businessID)
	return nil, ErrAppointmentNotFound
}

func (uc *UseCase) apply(ctx context.Context, businessID, appointmentID string, t scheduling.Transition) (*domain.Appointment, error) {
	switch {
	case t.Delete:
		return nil, uc.store.DeleteAppointment(ctx, appointmentID)
	case t.Action == scheduling.ActionAccept:
		return uc.store.AcceptAppointment(ctx, businessID, appointmentID)
	default:
		return uc.store.UpdateAppointmentStatus(ctx, appointmentID, t.To)
	}
}

func (uc *UseCase) appendEvent(ctx context.Context, req *Request, t scheduling.Transition) {
	if uc.journal == nil {
		return
	}

	event := &domain.AppointmentEvent{
		AppointmentID: req.AppointmentID,
		BusinessID:    req.BusinessID,
		ActorID:       req.Session.UserID,
		ActorRole:     req.Session.Role,
		Action:        string(t.Action),
		FromStatus:    ptr.Ptr(t.From),
		OccurredAt:    uc.timeProvider.Now(),
	}
	if !t.Delete {
		event.ToStatus = ptr.Ptr(t.To)
	}

	if err := uc.journal.Append(ctx, event); err != nil {
		uc.logger.Warn("TransitionAppointment: failed to append audit event for appointment id=%s: %v", req.AppointmentID, err)
	}
}

func (uc *UseCase) observe(req *Request, resp *Response, err error) {
	if uc.metrics == nil || req == nil {
		return
	}

	outcome := outcomeSuccess
	switch {
	case err == nil && resp != nil && resp.ConfirmationRequired:
		outcome = outcomeConfirmation
	case errors.Is(err, ErrRemoteStore), errors.Is(err, ErrInternal):
		outcome = outcomeFailed
	case err != nil:
		outcome = outcomeRejected
	}
	uc.metrics.IncTransition(string(req.Action), outcome)
}

func mapGuardError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrActorNotAllowed):
		return fmt.Errorf("%w: %v", ErrForbidden, err)
	case errors.Is(err, scheduling.ErrNotCompletableYet):
		return ErrNotCompletableYet
	case errors.Is(err, scheduling.ErrIllegalTransition):
		return fmt.Errorf("%w: %v", ErrIllegalTransition, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
