package confirmations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	stageIssued   = "issued"
	stageConsumed = "consumed"
	stageInvalid  = "invalid"
)

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Manager выдает и погашает токены двухшагового подтверждения
type Manager struct {
	store   Store
	ttl     time.Duration
	clock   TimeProvider
	metrics Metrics
}

// NewManager создает менеджер; metrics может быть nil
func NewManager(store Store, ttl time.Duration, clock TimeProvider, metrics Metrics) *Manager {
	if clock == nil {
		clock = RealTimeProvider{}
	}
	return &Manager{store: store, ttl: ttl, clock: clock, metrics: metrics}
}

// Issue выдает новый токен для subject
func (m *Manager) Issue(ctx context.Context, subject Subject) (*Confirmation, error) {
	c := &Confirmation{
		Token:     uuid.NewString(),
		Subject:   subject,
		ExpiresAt: m.clock.Now().Add(m.ttl),
	}
	if err := m.store.Put(ctx, c, m.ttl); err != nil {
		return nil, err
	}
	m.inc(stageIssued)
	return c, nil
}

// Consume погашает токен. Токен одноразовый: после Consume он недействителен
// даже если subject не совпал.
func (m *Manager) Consume(ctx context.Context, token string, subject Subject) error {
	if token == "" {
		m.inc(stageInvalid)
		return ErrNotFound
	}

	c, err := m.store.Take(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			m.inc(stageInvalid)
		}
		return err
	}

	if !m.clock.Now().Before(c.ExpiresAt) {
		m.inc(stageInvalid)
		return ErrNotFound
	}
	if c.Subject != subject {
		m.inc(stageInvalid)
		return fmt.Errorf("%w: issued for %s on %s", ErrMismatch, c.Subject.Action, c.Subject.AppointmentID)
	}

	m.inc(stageConsumed)
	return nil
}

func (m *Manager) inc(stage string) {
	if m.metrics != nil {
		m.metrics.IncConfirmation(stage)
	}
}
