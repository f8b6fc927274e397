package notification

import (
	"context"
	"sync"
	"time"

	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Deduper remembers which notifications were already delivered.
// Claim reports false when key was claimed before and has not expired.
type Deduper interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

const keyPrefix = "notify:"

type RedisDeduper struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisDeduper(client redis.Cmdable, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: ttl}
}

func (d *RedisDeduper) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := d.client.SetNX(ctx, keyPrefix+key, 1, d.ttl).Result()
	if err != nil {
		return false, errs.Wrapf(err, "failed to claim %s", key)
	}
	return ok, nil
}

func (d *RedisDeduper) Release(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errs.Wrapf(err, "failed to release %s", key)
	}
	return nil
}

// MemoryDeduper is the single-process fallback used when redis is disabled.
type MemoryDeduper struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clock.Clock
	claimed map[string]time.Time

	// nextSweep bounds expired-entry cleanup to once per ttl.
	nextSweep time.Time
}

func NewMemoryDeduper(ttl time.Duration, clk clock.Clock) *MemoryDeduper {
	return &MemoryDeduper{
		ttl:     ttl,
		clock:   clk,
		claimed: make(map[string]time.Time),
	}
}

func (d *MemoryDeduper) Claim(_ context.Context, key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	if !now.Before(d.nextSweep) {
		d.sweep(now)
	}
	if expires, ok := d.claimed[key]; ok && now.Before(expires) {
		return false, nil
	}
	d.claimed[key] = now.Add(d.ttl)
	return true, nil
}

// sweep drops expired claims; callers hold mu.
func (d *MemoryDeduper) sweep(now time.Time) {
	for key, expires := range d.claimed {
		if !now.Before(expires) {
			delete(d.claimed, key)
		}
	}
	d.nextSweep = now.Add(d.ttl)
}

// Len reports how many claims are held in memory, expired ones included until the next sweep.
func (d *MemoryDeduper) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.claimed)
}

func (d *MemoryDeduper) Release(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.claimed, key)
	return nil
}
