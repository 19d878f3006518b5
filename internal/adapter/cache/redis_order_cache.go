package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tracker_orders/internal/domain/entities"
	"tracker_orders/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "order:tracking:"
	DefaultTTL = time.Minute
	fieldOrder = "o"
)

// setIfNotOlder stores the order unless the cached copy carries a newer
// version. Versions are fixed-width decimal strings, so string order is
// numeric order.
var setIfNotOlder = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'v')
if cur and cur > ARGV[1] then
  return 0
end
redis.call('HSET', KEYS[1], 'v', ARGV[1], 'o', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// RedisOrderCache caches tracking lookups by pseudonymous id. Each entry is a
// hash holding the order and its updatedAt version.
type RedisOrderCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ interfaces.IOrderCache = (*RedisOrderCache)(nil)

// NewRedisOrderCache uses DefaultTTL when ttl is not positive; entries always expire.
func NewRedisOrderCache(rdb redis.Cmdable, ttl time.Duration) *RedisOrderCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisOrderCache{rdb: rdb, ttl: ttl}
}

func (r *RedisOrderCache) Get(ctx context.Context, pseudonymousID string) (entities.Order, bool, error) {
	raw, err := r.rdb.HGet(ctx, keyPrefix+pseudonymousID, fieldOrder).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Order{}, false, nil
	}
	if err != nil {
		return entities.Order{}, false, err
	}

	var o entities.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return entities.Order{}, false, err
	}
	return o, true, nil
}

// Set never replaces a cached order whose UpdatedAt is newer than o's, so a
// slow reader cannot overwrite the copy written by a later update.
func (r *RedisOrderCache) Set(ctx context.Context, o entities.Order) error {
	if o.PseudonymousID == "" {
		return nil
	}
	raw, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return setIfNotOlder.Run(ctx, r.rdb,
		[]string{keyPrefix + o.PseudonymousID},
		version(o.UpdatedAt), string(raw), r.ttl.Milliseconds(),
	).Err()
}

func (r *RedisOrderCache) Invalidate(ctx context.Context, pseudonymousID string) error {
	return r.rdb.Del(ctx, keyPrefix+pseudonymousID).Err()
}

func version(t time.Time) string {
	return fmt.Sprintf("%020d", t.UnixNano())
}
