package digest

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultTTL is how long a computed digest stays fresh.
const DefaultTTL = 90 * time.Second

// settingKey is the key used in the settings table for the persisted tier.
const settingKey = "digest"

// cacheEntry is the stored unit of both cache tiers.
type cacheEntry struct {
	Data      Data      `json:"data"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Cache is the two-tier digest cache: an in-process map consulted first
// and the settings table as the persisted second tier. A Cache is safe
// for concurrent use.
//
// It is constructed once at startup and passed to the digest Service,
// never used as package state.
type Cache struct {
	db    *gorm.DB
	ttl   time.Duration
	clock func() time.Time

	mu      sync.Mutex
	entries map[uuid.UUID]cacheEntry
}

// NewCache returns a Cache persisting to the settings table in db.
// A non-positive ttl falls back to DefaultTTL.
func NewCache(db *gorm.DB, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		db:      db,
		ttl:     ttl,
		clock:   time.Now,
		entries: map[uuid.UUID]cacheEntry{},
	}
}

// Get returns the cached digest for the user if one exists, fresh or
// stale. The second return value reports whether the value is still
// within its TTL.
func (c *Cache) Get(userID uuid.UUID) (Data, bool, bool) {
	now := c.clock()

	c.mu.Lock()
	entry, ok := c.entries[userID]
	c.mu.Unlock()

	if ok {
		return entry.Data, now.Before(entry.ExpiresAt), true
	}

	// Second tier: the persisted settings row survives restarts.
	value, ok, err := models.GetSetting(c.db, userID, settingKey)
	if err != nil || !ok {
		return Data{}, false, false
	}

	if err := json.Unmarshal([]byte(value), &entry); err != nil {
		log.Debug().Err(err).Str("userID", userID.String()).Msg("discarding unreadable persisted digest")
		return Data{}, false, false
	}

	// Promote to the memory tier so the next read is cheap
	c.mu.Lock()
	c.entries[userID] = entry
	c.mu.Unlock()

	return entry.Data, now.Before(entry.ExpiresAt), true
}

// Put stores a fresh digest in both tiers. A failure to write the
// persisted tier is reported but leaves the memory tier in place, so
// callers can deliberately ignore it.
func (c *Cache) Put(userID uuid.UUID, data Data) error {
	entry := cacheEntry{
		Data:      data,
		ExpiresAt: c.clock().Add(c.ttl),
	}

	c.mu.Lock()
	c.entries[userID] = entry
	c.mu.Unlock()

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return models.SetSetting(c.db, userID, settingKey, string(raw))
}
