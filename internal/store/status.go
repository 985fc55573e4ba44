package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Report lifecycle states tracked per record.
const (
	StatusSubmitted = "submitted"
	StatusGenerated = "generated"
	StatusEmailed   = "emailed"
	StatusFailed    = "failed"
)

var ErrMiss = errors.New("status miss")

// StatusStore tracks the latest report-generation state per record in
// Redis. The store is optional: a nil client turns every call into a
// no-op so the pipeline works without Redis.
type StatusStore struct {
	c   *redis.Client
	ttl time.Duration
}

func NewStatusStore(c *redis.Client, ttl time.Duration) *StatusStore {
	return &StatusStore{c: c, ttl: ttl}
}

func statusKey(recordID int64) string {
	return fmt.Sprintf("ejsis:record:%d:status", recordID)
}

func (s *StatusStore) Set(ctx context.Context, recordID int64, status string) error {
	if s == nil || s.c == nil {
		return nil
	}
	return s.c.Set(ctx, statusKey(recordID), status, s.ttl).Err()
}

func (s *StatusStore) Get(ctx context.Context, recordID int64) (string, error) {
	if s == nil || s.c == nil {
		return "", ErrMiss
	}
	val, err := s.c.Get(ctx, statusKey(recordID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrMiss
		}
		return "", err
	}
	return val, nil
}
