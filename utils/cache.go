package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"seatwise/config"
)

// CacheClient memoizes upstream availability and floor metadata. Seat
// availability changes quickly, so callers pass short TTLs.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. Unlike persistence, the
// cache is an optimization: if Redis is unreachable we log and fall back
// to direct fetches instead of refusing to start.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis cache unreachable, continuing without memoization", zap.Error(err))
		CacheClient = nil
	}
}

// GetCached returns the cached JSON payload for key, or runs fetch and
// stores its result for ttl. dest receives the decoded payload either way.
// The core never invalidates entries; expiry is TTL-only.
func GetCached(ctx context.Context, key string, ttl time.Duration, dest any, fetch func() ([]byte, error)) error {
	logger := GetLogger()

	if CacheClient != nil {
		if data, err := CacheClient.Get(ctx, key).Bytes(); err == nil {
			logger.Debug("cache hit", zap.String("key", key))
			return json.Unmarshal(data, dest)
		}
	}

	logger.Debug("cache miss", zap.String("key", key))
	raw, err := fetch()
	if err != nil {
		return err
	}

	if CacheClient != nil {
		if err := CacheClient.Set(ctx, key, raw, ttl).Err(); err != nil {
			logger.Warn("failed to store cache entry", zap.String("key", key), zap.Error(err))
		}
	}
	return json.Unmarshal(raw, dest)
}
