package businesses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/integrations/remotestore"
	"github.com/sudeal/Nokta-sub000/internal/scheduling"
	"github.com/sudeal/Nokta-sub000/internal/service/businesses/models"
	"github.com/sudeal/Nokta-sub000/pkg/ptr"
)

// Service сервис публичной страницы бизнеса
type Service struct {
	store        RemoteStore
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса. metrics может быть nil.
func NewService(store RemoteStore, metrics Metrics, logger Logger) *Service {
	return &Service{
		store:        store,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Page собирает страницу бизнеса из набора его возможностей.
// Блоки только для владельца (statistics) видны, если session управляет бизнесом.
func (s *Service) Page(ctx context.Context, session *domain.Session, businessID string) (*models.PageResponse, error) {
	business, err := s.getBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	isOwner := session != nil && session.OwnsBusiness(businessID)
	s.logger.Debug("Page: business=%s features=%v", businessID, business.Features.List())

	sections := make([]*models.SectionResponse, 0, len(domain.AllFeatures))
	for _, f := range domain.AllFeatures {
		if !business.Features.Has(f) {
			continue
		}
		section := composeSection(f, business)
		if section.OwnerOnly && !isOwner {
			continue
		}
		sections = append(sections, section)
	}

	s.logger.Info("Page: business=%s, sections=%d, owner=%t", businessID, len(sections), isOwner)

	return &models.PageResponse{
		ID:          business.ID,
		Name:        business.Name,
		Description: business.Description,
		Hours:       models.FromDomainHours(business.Hours),
		Sections:    sections,
		Bookable:    business.Hours.Validate() == nil && business.Hours.OpeningHour < business.Hours.ClosingHour,
	}, nil
}

// CheckAvailability проверяет, можно ли записаться на scheduledAt.
// Занятость времени другими записями не учитывается.
func (s *Service) CheckAvailability(ctx context.Context, businessID string, scheduledAt time.Time) (*models.AvailabilityResponse, error) {
	if scheduledAt.IsZero() {
		return nil, fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	business, err := s.getBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	result := &models.AvailabilityResponse{
		Bookable: true,
		Hours:    models.FromDomainHours(business.Hours),
	}

	err = scheduling.IsBookable(scheduledAt, business.Hours, s.timeProvider.Now())
	if err == nil {
		return result, nil
	}

	reason, ok := scheduling.ReasonOf(err)
	if !ok {
		s.logger.Error("CheckAvailability: business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if s.metrics != nil {
		s.metrics.IncBookingRejection(string(reason))
	}

	result.Bookable = false
	result.Reason = ptr.Ptr(string(reason))
	return result, nil
}

func (s *Service) getBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	if strings.TrimSpace(businessID) == "" {
		return nil, fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	business, err := s.store.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, remotestore.ErrNotFound) {
			s.logger.Warn("getBusiness: business id=%s not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("getBusiness: failed to get business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrRemoteStore, err)
	}
	return business, nil
}

func composeSection(f domain.Feature, b *domain.Business) *models.SectionResponse {
	section := &models.SectionResponse{Key: string(f)}
	switch f {
	case domain.FeatureDirections:
		section.Address = b.Address
	case domain.FeatureMessaging:
		section.Phone = b.Phone
	case domain.FeatureStatistics:
		section.OwnerOnly = true
	}
	return section
}
