package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"walletwave.backend/internal/domain/entities"
	"walletwave.backend/pkg/redis"
)

const preferencesKeyPrefix = "session:prefs:"

// PreferencesStore keeps per-wallet dashboard preferences for the lifetime
// of a session. Entries renew on every write and lapse back to defaults.
type PreferencesStore struct {
	sessionTTL time.Duration
}

// NewPreferencesStore creates a preferences store with the given session TTL.
func NewPreferencesStore(sessionTTL time.Duration) *PreferencesStore {
	return &PreferencesStore{sessionTTL: sessionTTL}
}

func preferencesKey(wallet string) string {
	return preferencesKeyPrefix + strings.ToLower(wallet)
}

// Get returns the wallet's stored preferences, falling back to defaults when
// none are stored or the session lapsed.
func (s *PreferencesStore) Get(ctx context.Context, wallet string) (*entities.Preferences, error) {
	raw, err := redis.Get(ctx, preferencesKey(wallet))
	if err == goredis.Nil {
		defaults := entities.DefaultPreferences()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}

	var prefs entities.Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return nil, fmt.Errorf("corrupt preferences entry: %w", err)
	}
	return &prefs, nil
}

// Put stores the wallet's preferences and renews the session window.
func (s *PreferencesStore) Put(ctx context.Context, wallet string, prefs *entities.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return redis.Set(ctx, preferencesKey(wallet), raw, s.sessionTTL)
}
