package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"jobport/internal/domain"
	"jobport/pkg/logger"
)

// Cache key constants
const (
	UserPrefix    = "user"
	UserByIDKey   = "user:id:%d"
	JobPrefix     = "job"
	JobByIDKey    = "job:id:%d"
	JobListPrefix = "jobs:list"
	JobListKey    = "jobs:list:%s"
)

// Cache expiration times
const (
	ShortExpiration  = 5 * time.Minute  // Frequently changing data
	MediumExpiration = 30 * time.Minute // Moderately changing data
	LongExpiration   = 2 * time.Hour    // Rarely changing data
)

// CacheStrategy defines the caching patterns used by the cached services.
type CacheStrategy interface {
	// Read-through: check cache first, on miss fetch from source and cache it
	ReadThrough(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error
}

type CacheManager struct {
	cache  Cache
	logger logger.Logger
}

func NewCacheManager(cache Cache, logger logger.Logger) CacheStrategy {
	return &CacheManager{
		cache:  cache,
		logger: logger,
	}
}

func (cm *CacheManager) ReadThrough(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error {
	err := cm.cache.Get(ctx, key, dest)
	if err == nil {
		return nil
	}

	if err != ErrCacheMiss {
		cm.logger.Error("Cache error in read-through", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		// Continue to fetch from source despite cache error
	}

	data, err := fetchFunc()
	if err != nil {
		return err
	}

	if err := cm.cache.Set(ctx, key, data, expiration); err != nil {
		cm.logger.Error("Cache set error in read-through", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		// Don't fail the request if cache set fails
	}

	return copyData(data, dest)
}

func copyData(src, dest interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func UserCacheKey(userID int64) string {
	return fmt.Sprintf(UserByIDKey, userID)
}

func JobCacheKey(jobID int64) string {
	return fmt.Sprintf(JobByIDKey, jobID)
}

// JobListCacheKey derives a stable key from the normalized filter so
// identical listings share a cache entry.
func JobListCacheKey(filter *domain.JobFilter) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s|%d|%d",
		filter.Status,
		filter.JobType,
		filter.Category,
		strings.ToLower(filter.Location),
		strings.Join(filter.Skills, ","),
		strings.ToLower(filter.Search),
		filter.Page,
		filter.PageSize,
	)
	return fmt.Sprintf(JobListKey, fmt.Sprintf("%x", h.Sum64()))
}

func InvalidateJobCache(ctx context.Context, cache Cache, jobID int64) error {
	if err := cache.Delete(ctx, JobCacheKey(jobID)); err != nil {
		return err
	}
	return cache.DeletePattern(ctx, JobListPrefix+":*")
}

func InvalidateUserCache(ctx context.Context, cache Cache, userID int64) error {
	return cache.Delete(ctx, UserCacheKey(userID))
}
