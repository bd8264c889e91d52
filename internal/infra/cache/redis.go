package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/infra/repository/converter"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient parses a redis:// URL and checks the server answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errs.Wrap(err, "parse redis url")
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "ping redis")
	}
	return client, nil
}

// RedisBookingCache shares cached bookings between instances. Redis errors
// are logged and read as a miss; the repository stays the source of truth.
type RedisBookingCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisBookingCache(client redis.Cmdable, prefix string, ttl time.Duration) *RedisBookingCache {
	return &RedisBookingCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisBookingCache) key(id string) string {
	return c.prefix + "booking:" + id
}

func (c *RedisBookingCache) Get(ctx context.Context, id string) (*booking.Booking, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("booking cache read failed", "reservation_id", id, "error", err)
		}
		return nil, false
	}
	b, err := converter.UnmarshalBooking(data)
	if err != nil {
		slog.Warn("booking cache entry unreadable", "reservation_id", id, "error", err)
		c.Invalidate(ctx, id)
		return nil, false
	}
	return b, true
}

func (c *RedisBookingCache) Set(ctx context.Context, b *booking.Booking) {
	data, err := converter.MarshalBooking(b)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(b.ReservationID()), data, c.ttl).Err(); err != nil {
		slog.Warn("booking cache write failed", "reservation_id", b.ReservationID(), "error", err)
	}
}

func (c *RedisBookingCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		slog.Warn("booking cache invalidate failed", "reservation_id", id, "error", err)
	}
}

// Flush deletes every booking key under the prefix.
func (c *RedisBookingCache) Flush(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.key("*"), 500).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == 500 {
			c.del(ctx, keys)
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("booking cache scan failed", "error", err)
	}
	if len(keys) > 0 {
		c.del(ctx, keys)
	}
}

func (c *RedisBookingCache) del(ctx context.Context, keys []string) {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("booking cache flush failed", "keys", len(keys), "error", err)
	}
}
