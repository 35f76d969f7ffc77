package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/integrations/remotestore"
	"github.com/sudeal/Nokta-sub000/internal/scheduling"
	"github.com/sudeal/Nokta-sub000/internal/service/appointments/models"
)

// Service сервис чтения записей бизнеса: дашборд, статистика, выгрузка, история
type Service struct {
	store        RemoteStore
	journal      EventJournal
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса. journal может быть nil.
func NewService(store RemoteStore, journal EventJournal, logger Logger) *Service {
	return &Service{
		store:        store,
		journal:      journal,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// snapshot состояние записей бизнеса на момент запроса
type snapshot struct {
	business *domain.Business
	now      time.Time
	buckets  scheduling.Buckets
}

// Dashboard возвращает записи бизнеса, разложенные по вкладкам, с доступными действиями.
// date ограничивает выборку одним днем.
func (s *Service) Dashboard(ctx context.Context, session *domain.Session, businessID string, date *time.Time) (*models.DashboardResponse, error) {
	s.logger.Info("Dashboard: business=%s, user=%s", businessID, sessionUser(session))

	snap, err := s.load(ctx, session, businessID, date)
	if err != nil {
		return nil, err
	}

	result := snap.dashboard(businessID, session)
	if date != nil {
		d := date.Format(domain.DateFormat)
		result.Date = &d
	}

	s.logger.Info("Dashboard: business=%s today=%d pending=%d expired=%d all=%d",
		businessID, len(result.Today), len(result.Pending), len(result.Expired), len(result.All))
	return result, nil
}

// CustomerAppointments возвращает записи клиента в бизнесе с действиями, доступными клиенту
func (s *Service) CustomerAppointments(ctx context.Context, session *domain.Session, businessID string) (*models.DashboardResponse, error) {
	if session == nil || !session.IsCustomer() {
		s.logger.Warn("CustomerAppointments: access denied for user=%s to business=%s", sessionUser(session), businessID)
		return nil, ErrAccessDenied
	}
	s.logger.Info("CustomerAppointments: business=%s, user=%s", businessID, session.UserID)

	snap, err := s.fetch(ctx, businessID, nil, func(a *domain.Appointment) bool {
		return a.BelongsTo(session.UserID)
	})
	if err != nil {
		return nil, err
	}

	result := snap.dashboard(businessID, session)
	s.logger.Info("CustomerAppointments: business=%s user=%s pending=%d all=%d",
		businessID, session.UserID, len(result.Pending), len(result.All))
	return result, nil
}

// Statistics возвращает сводку по записям. Требует включенной возможности statistics.
func (s *Service) Statistics(ctx context.Context, session *domain.Session, businessID string) (*models.StatisticsResponse, error) {
	s.logger.Info("Statistics: business=%s, user=%s", businessID, sessionUser(session))

	snap, err := s.load(ctx, session, businessID, nil)
	if err != nil {
		return nil, err
	}
	if !snap.business.Features.Has(domain.FeatureStatistics) {
		s.logger.Warn("Statistics: feature disabled for business=%s", businessID)
		return nil, ErrFeatureDisabled
	}

	byStatus := map[string]int{
		string(domain.StatusPending):   len(snap.buckets.Pending),
		string(domain.StatusAccepted):  0,
		string(domain.StatusRejected):  0,
		string(domain.StatusCompleted): 0,
	}
	for _, a := range snap.buckets.All {
		byStatus[string(a.Status)]++
	}

	return &models.StatisticsResponse{
		BusinessID: businessID,
		Total:      len(snap.buckets.Pending) + len(snap.buckets.All),
		Today:      len(snap.buckets.Today),
		Pending:    len(snap.buckets.Pending),
		Expired:    len(snap.buckets.Expired),
		ByStatus:   byStatus,
	}, nil
}

// Events возвращает историю действий над записью из журнала аудита
func (s *Service) Events(ctx context.Context, session *domain.Session, businessID, appointmentID string) (*models.EventListResponse, error) {
	if err := checkOwner(session, businessID); err != nil {
		s.logger.Warn("Events: access denied for user=%s to business=%s", sessionUser(session), businessID)
		return nil, err
	}
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}

	events, err := s.journal.ListByAppointment(ctx, businessID, appointmentID)
	if err != nil {
		s.logger.Error("Events: journal error for appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Events - journal error: %v", ErrInternal, err)
	}

	return models.FromDomainEventList(appointmentID, events), nil
}

func (s *Service) load(ctx context.Context, session *domain.Session, businessID string, date *time.Time) (*snapshot, error) {
	if err := checkOwner(session, businessID); err != nil {
		s.logger.Warn("load: access denied for user=%s to business=%s", sessionUser(session), businessID)
		return nil, err
	}
	return s.fetch(ctx, businessID, date, nil)
}

// fetch загружает бизнес и его записи; keep, если задан, отбирает записи до классификации
func (s *Service) fetch(ctx context.Context, businessID string, date *time.Time, keep func(*domain.Appointment) bool) (*snapshot, error) {
	business, err := s.store.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, remotestore.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("fetch: failed to get business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrRemoteStore, err)
	}

	var list []*domain.Appointment
	if date != nil {
		list, err = s.store.FetchAppointmentsOn(ctx, businessID, *date)
	} else {
		list, err = s.store.FetchAppointments(ctx, businessID)
	}
	if err != nil {
		s.logger.Error("fetch: failed to fetch appointments for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrRemoteStore, err)
	}

	if keep != nil {
		kept := make([]*domain.Appointment, 0, len(list))
		for _, a := range list {
			if keep(a) {
				kept = append(kept, a)
			}
		}
		list = kept
	}

	now := business.Hours.Local(s.timeProvider.Now())
	return &snapshot{
		business: business,
		now:      now,
		buckets:  scheduling.Classify(scheduling.Localize(list, business.Hours), now),
	}, nil
}

// dashboard раскладывает записи по вкладкам с действиями, доступными session
func (snap *snapshot) dashboard(businessID string, session *domain.Session) *models.DashboardResponse {
	expired := make(map[string]bool, len(snap.buckets.Expired))
	for _, a := range snap.buckets.Expired {
		expired[a.ID] = true
	}

	convert := func(list []*domain.Appointment) []*models.AppointmentResponse {
		out := make([]*models.AppointmentResponse, 0, len(list))
		for _, a := range list {
			out = append(out, models.FromDomainAppointment(a, expired[a.ID], scheduling.AllowedActions(a, session, snap.now)))
		}
		return out
	}

	return &models.DashboardResponse{
		BusinessID: businessID,
		Today:      convert(snap.buckets.Today),
		Pending:    convert(snap.buckets.Pending),
		Expired:    convert(snap.buckets.Expired),
		All:        convert(snap.buckets.All),
	}
}

func checkOwner(session *domain.Session, businessID string) error {
	if session == nil || !session.OwnsBusiness(businessID) {
		return ErrAccessDenied
	}
	return nil
}

func sessionUser(session *domain.Session) string {
	if session == nil {
		return "anonymous"
	}
	return session.UserID
}
