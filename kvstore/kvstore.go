// Package kvstore is the durable document store for session-scoped state.
// Every document is one JSON blob under one string key. Missing or corrupt
// data never propagates an error to callers: reads report absence and the
// caller falls back to its default state.
package kvstore

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// Key prefixes for the persisted documents.
const (
	cartPrefix         = "cart:"
	prefsPrefix        = "prefs:"
	comparePrefsPrefix = "compareprefs:"
)

func CartKey(sessionID string) string         { return cartPrefix + sessionID }
func PrefsKey(sessionID string) string        { return prefsPrefix + sessionID }
func ComparePrefsKey(sessionID string) string { return comparePrefsPrefix + sessionID }

type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// GetJSON loads and decodes the document under key into out. Returns false
// when the key is absent or holds data that does not decode; corruption is
// logged and treated like absence.
func (s *Store) GetJSON(ctx context.Context, key string, out any) bool {
	raw, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("kvstore: get %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("kvstore: corrupt document at %s: %v", key, err)
		return false
	}
	return true
}

// SetJSON serializes v under key. Write failures are logged and swallowed;
// persistence is fire-and-forget per the cart contract.
func (s *Store) SetJSON(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("kvstore: marshal for %s: %v", key, err)
		return
	}
	if err := s.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		log.Printf("kvstore: set %s: %v", key, err)
	}
}

func (s *Store) Delete(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("kvstore: del %s: %v", key, err)
	}
}
