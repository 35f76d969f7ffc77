package confirmations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранит токены в Redis с TTL
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore создает хранилище токенов в Redis
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Put(ctx context.Context, c *Confirmation, ttl time.Duration) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStore, err)
	}
	if err := s.rdb.Set(ctx, s.key(c.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrStore, err)
	}
	return nil
}

func (s *RedisStore) Take(ctx context.Context, token string) (*Confirmation, error) {
	data, err := s.rdb.GetDel(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getdel: %v", ErrStore, err)
	}

	var c Confirmation
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrStore, err)
	}
	return &c, nil
}

func (s *RedisStore) key(token string) string {
	return s.prefix + ":" + token
}
