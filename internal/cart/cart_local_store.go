package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// localCartTTL bounds how long an idle guest cart is kept.
const localCartTTL = 30 * 24 * time.Hour

//go:generate mockgen -source=cart_local_store.go -destination=../mock/cart/cart_local_store_mock.go -package=mock
// LocalStore is the device/session-scoped cart store. Reads and writes are
// synchronous; a session keeps at most one cart.
type LocalStore interface {
	Read(ctx context.Context, sessionID string) ([]Item, error)
	Write(ctx context.Context, sessionID string, items []Item) error
	Clear(ctx context.Context, sessionID string) error
}

type redisLocalStore struct {
	rdb *redis.Client
}

func NewLocalStore(rdb *redis.Client) LocalStore {
	return &redisLocalStore{rdb: rdb}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Read returns the session's cart, or an empty cart when none exists or the
// stored payload cannot be decoded.
func (s *redisLocalStore) Read(ctx context.Context, sessionID string) ([]Item, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return []Item{}, nil
	}
	return items, nil
}

func (s *redisLocalStore) Write(ctx context.Context, sessionID string, items []Item) error {
	if items == nil {
		items = []Item{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(sessionID), raw, localCartTTL).Err()
}

func (s *redisLocalStore) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}
