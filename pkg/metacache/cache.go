// Package metacache is a short-TTL, in-memory record of where lyrics for a
// (title, artist) pair were last found. It only exists to skip duplicate
// external calls; losing it on restart is harmless.
package metacache

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"vietsong-backend/pkg/vnstring"
)

var logger = log.With().Str("component", "metacache").Logger()

const (
	// DefaultTTL is how long an entry stays valid.
	DefaultTTL = 30 * time.Minute
	// sweepInterval is how often the background sweep purges expired entries.
	sweepInterval = 10 * time.Minute
)

// Entry records the best lyrics source found for a track.
type Entry struct {
	TrackName  string
	ArtistName string
	AlbumName  string
	Duration   float64
	Source     string // "lrclib" | "openai" | "database"
	FoundAt    time.Time
	HasLyrics  bool
}

// Cache is a TTL map keyed by the normalized title|artist composite.
// Entries are replaced whole, never partially mutated.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

// New creates a cache with the default TTL and wall clock.
func New() *Cache {
	return NewWithClock(DefaultTTL, time.Now)
}

// NewWithClock injects TTL and clock, for tests.
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		now:     now,
		stop:    make(chan struct{}),
	}
}

// Store records meta for a (title, artist) pair, stamping FoundAt.
func (c *Cache) Store(title, artist string, meta Entry) {
	meta.FoundAt = c.now()
	key := vnstring.Key(title, artist)

	c.mu.Lock()
	c.entries[key] = meta
	c.mu.Unlock()

	logger.Debug().Str("key", key).Str("source", meta.Source).Msg("Cached lyrics metadata")
}

// Get returns the entry for (title, artist), or the title-only entry when the
// artist-qualified key is absent (a prior Store may have lacked artist
// context). Expired entries are evicted on read and reported as misses.
func (c *Cache) Get(title, artist string) *Entry {
	if e := c.lookup(vnstring.Key(title, artist)); e != nil {
		return e
	}
	if artist != "" {
		return c.lookup(vnstring.Key(title, ""))
	}
	return nil
}

func (c *Cache) lookup(key string) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if c.now().Sub(e.FoundAt) >= c.ttl {
		delete(c.entries, key)
		return nil
	}
	out := e
	return &out
}

// Len reports the number of live (unexpired) entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if c.now().Sub(e.FoundAt) < c.ttl {
			n++
		}
	}
	return n
}

// Sweep removes all expired entries and returns how many were purged.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	purged := 0
	for key, e := range c.entries {
		if c.now().Sub(e.FoundAt) >= c.ttl {
			delete(c.entries, key)
			purged++
		}
	}
	if purged > 0 {
		logger.Info().Int("purged", purged).Int("remaining", len(c.entries)).Msg("Swept expired metadata entries")
	}
	return purged
}

// StartSweeper launches the periodic background sweep. Stop ends it.
func (c *Cache) StartSweeper() {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Sweep()
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop terminates the background sweeper. Safe to call more than once.
func (c *Cache) Stop() {
	c.once.Do(func() { close(c.stop) })
}
