package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/obs"
	"route-roster-service/internal/ports"
)

const (
	driversKey    = "roster:drivers"
	recipientsKey = "roster:recipients"
	locationsKey  = "roster:locations"
)

// CachedRosterSource is a read-through Redis cache over a RosterSource.
//
// Reference collections (drivers, recipients, locations) change rarely and
// are cached as JSON values with a TTL. Routes are never cached: history is
// a read-once snapshot per view and must reflect newly created routes.
// Cache failures degrade to the underlying source, they are never surfaced.
type CachedRosterSource struct {
	next ports.RosterSource
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedRosterSource(next ports.RosterSource, rdb *redis.Client, ttl time.Duration) *CachedRosterSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedRosterSource{next: next, rdb: rdb, ttl: ttl}
}

func (c *CachedRosterSource) Drivers(ctx context.Context) (_ []domain.Driver, err error) {
	defer obs.Time(ctx, "cache.Drivers")(&err)

	var out []domain.Driver
	ok, err := c.get(ctx, driversKey, &out)
	if err == nil && ok {
		return out, nil
	}

	out, err = c.next.Drivers(ctx)
	if err != nil {
		return nil, err
	}
	c.put(ctx, driversKey, out)
	return out, nil
}

// Driver resolves from the cached collection when present so a warm cache
// serves single-entity lookups without an upstream round trip.
func (c *CachedRosterSource) Driver(ctx context.Context, id int) (*domain.Driver, error) {
	var cached []domain.Driver
	if ok, err := c.get(ctx, driversKey, &cached); err == nil && ok {
		for _, d := range cached {
			if d.ID == id {
				return &d, nil
			}
		}
		return nil, ports.ErrNotFound
	}

	return c.next.Driver(ctx, id)
}

func (c *CachedRosterSource) Recipients(ctx context.Context) (_ []domain.Recipient, err error) {
	defer obs.Time(ctx, "cache.Recipients")(&err)

	var out []domain.Recipient
	ok, err := c.get(ctx, recipientsKey, &out)
	if err == nil && ok {
		return out, nil
	}

	out, err = c.next.Recipients(ctx)
	if err != nil {
		return nil, err
	}
	c.put(ctx, recipientsKey, out)
	return out, nil
}

func (c *CachedRosterSource) Locations(ctx context.Context) (_ []domain.Location, err error) {
	defer obs.Time(ctx, "cache.Locations")(&err)

	var out []domain.Location
	ok, err := c.get(ctx, locationsKey, &out)
	if err == nil && ok {
		return out, nil
	}

	out, err = c.next.Locations(ctx)
	if err != nil {
		return nil, err
	}
	c.put(ctx, locationsKey, out)
	return out, nil
}

// Routes passes through uncached.
func (c *CachedRosterSource) Routes(ctx context.Context) ([]domain.Route, error) {
	return c.next.Routes(ctx)
}

// Route passes through uncached.
func (c *CachedRosterSource) Route(ctx context.Context, id int) (*domain.Route, error) {
	return c.next.Route(ctx, id)
}

// Invalidate drops the cached reference collections, e.g. after roster
// administration changes upstream.
func (c *CachedRosterSource) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, driversKey, recipientsKey, locationsKey).Err(); err != nil {
		return fmt.Errorf("invalidate roster cache: %w", err)
	}
	return nil
}

func (c *CachedRosterSource) get(ctx context.Context, key string, out any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		log.Printf("roster cache get failed: key=%s err=%v", key, err)
		return false, err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("roster cache decode failed: key=%s err=%v", key, err)
		return false, err
	}
	return true, nil
}

func (c *CachedRosterSource) put(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("roster cache encode failed: key=%s err=%v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("roster cache set failed: key=%s err=%v", key, err)
	}
}
