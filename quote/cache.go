package quote

import (
	"context"
	"time"

	"dailythoughts/constants"
	"dailythoughts/store"

	"github.com/charmbracelet/log"
)

// Cache hands out one motivational quote per calendar day, persisted
// so a restart within the same day reuses it.
type Cache struct {
	gen   Generator
	store *store.Store
}

func NewCache(gen Generator, st *store.Store) *Cache {
	return &Cache{gen: gen, store: st}
}

// Today is the calendar-date cache key.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// Get returns today's quote, invoking the generator only when the
// stored entry is stale or absent. A generator failure yields the
// fixed fallback, which is not cached so a later call may retry.
func (c *Cache) Get(ctx context.Context, today string) string {
	if cached := c.store.LoadDailyQuote(); cached != nil && cached.Date == today {
		return cached.Quote
	}

	quote, err := c.gen.DailyQuote(ctx)
	if err != nil {
		log.Error("Failed to fetch daily quote", "err", err)
		return constants.FALLBACK_QUOTE
	}

	c.store.SaveDailyQuote(store.DailyQuote{Date: today, Quote: quote})
	return quote
}

// Reflect asks the generator for a reflection on a journal entry.
// Reflections are never cached.
func (c *Cache) Reflect(ctx context.Context, content string) string {
	reflection, err := c.gen.Reflection(ctx, content)
	if err != nil {
		log.Error("Failed to generate reflection", "err", err)
		return constants.FALLBACK_REFLECTION
	}
	return reflection
}
