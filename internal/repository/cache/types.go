package cache

import "time"

// Envelope wraps cached data with a logical expiry so hot keys never
// disappear from Redis; readers serve stale data and trigger a rebuild.
type Envelope[T any] struct {
	Data      T         `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`
	CreatedAt time.Time `json:"created_at"` // for debugging
}

// Expired checks whether the payload is logically expired.
func (e *Envelope[T]) Expired() bool {
	return time.Now().After(e.ExpireAt)
}

// NewEnvelope wraps data with a logical TTL.
func NewEnvelope[T any](data T, ttl time.Duration) *Envelope[T] {
	now := time.Now()
	return &Envelope[T]{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
