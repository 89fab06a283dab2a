// Package drafts keeps in-progress estimate forms in Redis until they expire.
package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

const (
	DefaultTTL = 7 * 24 * time.Hour
	keyPrefix  = "estimator:draft:"
)

var ErrNotFound = errors.New("draft not found")

type Store struct {
	client redis.Cmdable
	ttl    time.Duration
	now    func() time.Time
}

func NewStore(client redis.Cmdable, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl, now: time.Now}
}

// Save writes the draft and resets its expiry. A draft without an id gets a
// new one; the stored draft is returned.
func (s *Store) Save(ctx context.Context, draft model.Draft) (model.Draft, error) {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	draft.UpdatedAt = s.now().UTC()

	payload, err := json.Marshal(draft)
	if err != nil {
		return model.Draft{}, fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, key(draft.ID), payload, s.ttl).Err(); err != nil {
		return model.Draft{}, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

func (s *Store) Get(ctx context.Context, id string) (model.Draft, error) {
	payload, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Draft{}, ErrNotFound
	}
	if err != nil {
		return model.Draft{}, fmt.Errorf("get draft: %w", err)
	}

	var draft model.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return model.Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func key(id string) string {
	return keyPrefix + id
}
