package confirmations

import (
	"context"
	"time"
)

// Store хранилище токенов. Take должен удалять токен атомарно с чтением.
type Store interface {
	Put(ctx context.Context, c *Confirmation, ttl time.Duration) error
	Take(ctx context.Context, token string) (*Confirmation, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Metrics учет этапов подтверждения
type Metrics interface {
	IncConfirmation(stage string)
}
