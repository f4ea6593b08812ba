package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"jobport/pkg/circuitbreaker"
	"jobport/pkg/logger"
	"jobport/pkg/metrics"
)

type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	DeletePattern(ctx context.Context, pattern string) error
	GetKeys(ctx context.Context, pattern string) ([]string, error)

	Ping(ctx context.Context) error
}

// RedisCache implements Cache. Every Redis round trip goes through the
// circuit breaker; while the breaker is open callers get an error and
// fall back to the source.
type RedisCache struct {
	client  *redis.Client
	breaker *circuitbreaker.CircuitBreaker
	logger  logger.Logger
	prefix  string
}

func NewRedisCache(client *redis.Client, logger logger.Logger, prefix string) Cache {
	breaker := circuitbreaker.New(circuitbreaker.Settings{
		Name:    "redis-cache",
		Timeout: 30 * time.Second,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			logger.Warn("Cache devre kesici durumu değişti", map[string]interface{}{
				"name": name,
				"from": from.String(),
				"to":   to.String(),
			})
		},
	})

	return &RedisCache{
		client:  client,
		breaker: breaker,
		logger:  logger,
		prefix:  prefix,
	}
}

func (r *RedisCache) makeKey(key string) string {
	if r.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Cache set marshal hatası", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return err
	}

	fullKey := r.makeKey(key)
	_, err = r.breaker.Execute(func() (interface{}, error) {
		return nil, r.client.Set(ctx, fullKey, data, expiration).Err()
	})
	if err != nil {
		r.logger.Error("Cache set hatası", map[string]interface{}{
			"key":   fullKey,
			"error": err.Error(),
		})
		return err
	}

	return nil
}

func (r *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	fullKey := r.makeKey(key)

	result, err := r.breaker.Execute(func() (interface{}, error) {
		data, err := r.client.Get(ctx, fullKey).Result()
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return data, err
	})
	if err != nil {
		if err == ErrCacheMiss {
			metrics.RecordCacheMiss()
			r.logger.Debug("Cache miss", map[string]interface{}{"key": fullKey})
			return ErrCacheMiss
		}
		r.logger.Error("Cache get hatası", map[string]interface{}{
			"key":   fullKey,
			"error": err.Error(),
		})
		return err
	}

	if err := json.Unmarshal([]byte(result.(string)), dest); err != nil {
		r.logger.Error("Cache get unmarshal hatası", map[string]interface{}{
			"key":   fullKey,
			"error": err.Error(),
		})
		return err
	}

	metrics.RecordCacheHit()
	r.logger.Debug("Cache hit", map[string]interface{}{"key": fullKey})
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	fullKey := r.makeKey(key)

	_, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, r.client.Del(ctx, fullKey).Err()
	})
	if err != nil {
		r.logger.Error("Cache delete hatası", map[string]interface{}{
			"key":   fullKey,
			"error": err.Error(),
		})
		return err
	}

	return nil
}

func (r *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	fullKey := r.makeKey(key)

	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.client.Exists(ctx, fullKey).Result()
	})
	if err != nil {
		r.logger.Error("Cache exists hatası", map[string]interface{}{
			"key":   fullKey,
			"error": err.Error(),
		})
		return false, err
	}

	return result.(int64) > 0, nil
}

func (r *RedisCache) DeletePattern(ctx context.Context, pattern string) error {
	fullPattern := r.makeKey(pattern)

	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.client.Keys(ctx, fullPattern).Result()
	})
	if err != nil {
		r.logger.Error("Cache delete pattern hatası", map[string]interface{}{
			"pattern": fullPattern,
			"error":   err.Error(),
		})
		return err
	}

	keys := result.([]string)
	if len(keys) == 0 {
		return nil
	}

	_, err = r.breaker.Execute(func() (interface{}, error) {
		return nil, r.client.Del(ctx, keys...).Err()
	})
	if err != nil {
		r.logger.Error("Cache delete pattern hatası", map[string]interface{}{
			"pattern": fullPattern,
			"keys":    len(keys),
			"error":   err.Error(),
		})
		return err
	}

	r.logger.Debug("Cache delete pattern başarılı", map[string]interface{}{
		"pattern":      fullPattern,
		"deleted_keys": len(keys),
	})
	return nil
}

func (r *RedisCache) GetKeys(ctx context.Context, pattern string) ([]string, error) {
	fullPattern := r.makeKey(pattern)

	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.client.Keys(ctx, fullPattern).Result()
	})
	if err != nil {
		r.logger.Error("Cache get keys hatası", map[string]interface{}{
			"pattern": fullPattern,
			"error":   err.Error(),
		})
		return nil, err
	}

	keys := result.([]string)
	if r.prefix != "" {
		for i, key := range keys {
			keys[i] = strings.TrimPrefix(key, r.prefix+":")
		}
	}

	return keys, nil
}

func (r *RedisCache) Ping(ctx context.Context) error {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, r.client.Ping(ctx).Err()
	})
	return err
}

var ErrCacheMiss = fmt.Errorf("cache miss")
