package services

import (
	"activofijo_server/config"
	"activofijo_server/structs"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// CacheService provides Redis caching for read-heavy lookups (site lists,
// supplier lists). A cache miss or a Redis outage is never an error for the
// caller; reads just fall through to the database.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			// Connection pool settings
			PoolSize:        cfg.Cache.PoolSize,
			MinIdleConns:    cfg.Cache.MinIdleConns,
			MaxIdleConns:    cfg.Cache.MaxIdleConns,
			PoolTimeout:     cfg.Cache.PoolTimeout,
			ConnMaxIdleTime: cfg.Cache.IdleTimeout,

			// Timeouts
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			// Retry settings
			MaxRetries:      cfg.Cache.MaxRetries,
			MinRetryBackoff: cfg.Cache.MinRetryBackoff,
			MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// SetJSON stores a value as JSON under key with the configured default TTL.
func (cs *CacheService) SetJSON(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		cs.logger.Warn("Failed to marshal cache value", gecho.Field("key", key), gecho.Field("error", err))
		return
	}

	if err := cs.client.Set(ctx, key, payload, cs.config.Cache.DefaultTTL).Err(); err != nil {
		cs.logger.Warn("Failed to write cache entry", gecho.Field("key", key), gecho.Field("error", err))
	}
}

// GetJSON loads a JSON value into dest. Returns false on miss or any error.
func (cs *CacheService) GetJSON(ctx context.Context, key string, dest any) bool {
	payload, err := cs.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cs.logger.Warn("Failed to read cache entry", gecho.Field("key", key), gecho.Field("error", err))
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		cs.logger.Warn("Failed to unmarshal cache entry", gecho.Field("key", key), gecho.Field("error", err))
		return false
	}
	return true
}

// Invalidate removes keys, tolerating Redis being down.
func (cs *CacheService) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := cs.client.Del(ctx, keys...).Err(); err != nil {
		cs.logger.Warn("Failed to invalidate cache entries",
			gecho.Field("keys", strings.Join(keys, ",")),
			gecho.Field("error", err))
	}
}

// Health pings Redis with a short deadline.
func (cs *CacheService) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return cs.client.Ping(ctx).Err()
}
