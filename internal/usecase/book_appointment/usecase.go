package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/integrations/remotestore"
	"github.com/sudeal/Nokta-sub000/internal/scheduling"
	"github.com/sudeal/Nokta-sub000/pkg/ptr"
)

const actionCreated = "created"

// UseCase use case для записи клиента к бизнесу
type UseCase struct {
	store        RemoteStore
	journal      EventJournal
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. journal и metrics могут быть nil.
func NewUseCase(store RemoteStore, journal EventJournal, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		journal:      journal,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute проверяет доступность времени и создает запись во внешнем хранилище.
// Пересечения с другими записями не проверяются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BookAppointment: customer=%s, business=%s, scheduledAt=%s",
		req.Session.UserID, req.BusinessID, req.ScheduledAt.Format(time.RFC3339))

	// 2. Получаем бизнес вместе с рабочими часами
	business, err := uc.store.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, remotestore.ErrNotFound) {
			uc.logger.Warn("BookAppointment: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("BookAppointment: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrRemoteStore, err)
	}

	// 3. Проверяем доступность времени
	now := uc.timeProvider.Now()
	if err := scheduling.IsBookable(req.ScheduledAt, business.Hours, now); err != nil {
		if reason, ok := scheduling.ReasonOf(err); ok && uc.metrics != nil {
			uc.metrics.IncBookingRejection(string(reason))
		}

		switch {
		case errors.Is(err, scheduling.ErrPastDate):
			uc.logger.Warn("BookAppointment: past date for business=%s: %v", req.BusinessID, err)
			return nil, ErrPastDate
		case errors.Is(err, scheduling.ErrOutsideBusinessHours):
			uc.logger.Warn("BookAppointment: outside hours for business=%s: %v", req.BusinessID, err)
			return nil, fmt.Errorf("%w: %v", ErrOutsideBusinessHours, err)
		case errors.Is(err, scheduling.ErrInvalidCandidate):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("BookAppointment: business=%s has invalid hours: %v", req.BusinessID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 4. Создаем запись; статус pending выставляет хранилище
	created, err := uc.store.CreateAppointment(ctx, req.Session.UserID, req.BusinessID, req.ScheduledAt, normalizeNote(req.Note))
	if err != nil {
		uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrRemoteStore, err)
	}

	// 5. Журнал аудита (ошибка не влияет на результат)
	uc.appendEvent(ctx, req.Session, req.BusinessID, created)

	uc.logger.Info("BookAppointment: successfully created appointment id=%s", created.ID)

	return toResponse(created, business.Hours), nil
}

func (uc *UseCase) appendEvent(ctx context.Context, session *domain.Session, businessID string, a *domain.Appointment) {
	if uc.journal == nil {
		return
	}

	event := &domain.AppointmentEvent{
		AppointmentID: a.ID,
		BusinessID:    businessID,
		ActorID:       session.UserID,
		ActorRole:     session.Role,
		Action:        actionCreated,
		ToStatus:      ptr.Ptr(a.Status),
		OccurredAt:    uc.timeProvider.Now(),
	}
	if err := uc.journal.Append(ctx, event); err != nil {
		uc.logger.Warn("BookAppointment: failed to append audit event for appointment id=%s: %v", a.ID, err)
	}
}
