package sequence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// raiseAndIncr lifts the counter to the floor before incrementing, so a
// fresh key never hands out numbers already used by stored bags.
var raiseAndIncr = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if current < floor then
	redis.call('SET', KEYS[1], floor)
end
return redis.call('INCR', KEYS[1])
`)

// Redis is a sequence shared by every replica through one redis key.
type Redis struct {
	client *redis.Client
	key    string
	floor  int64
}

// NewRedis creates a Redis sequence. floor is the highest value known to be taken.
func NewRedis(client *redis.Client, key string, floor int64) *Redis {
	return &Redis{client: client, key: key, floor: floor}
}

// Next returns the next value.
func (r *Redis) Next(ctx context.Context) (int64, error) {
	n, err := raiseAndIncr.Run(ctx, r.client, []string{r.key}, r.floor).Int64()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", r.key, err)
	}
	return n, nil
}
