package service

import (
	"context"
	"errors"

	"jobport/internal/domain"
	"jobport/pkg/cache"
	"jobport/pkg/logger"
)

// CachedUserService wraps UserService with read-through caching on the
// lookup paths. Role checks run after the cached fetch so that the same
// cache entry serves both public profile endpoints.
type CachedUserService struct {
	userService  domain.UserService
	cache        cache.Cache
	cacheManager cache.CacheStrategy
	logger       logger.Logger
}

func NewCachedUserService(
	userService domain.UserService,
	cacheInstance cache.Cache,
	cacheManager cache.CacheStrategy,
	logger logger.Logger,
) domain.UserService {
	return &CachedUserService{
		userService:  userService,
		cache:        cacheInstance,
		cacheManager: cacheManager,
		logger:       logger,
	}
}

func (s *CachedUserService) GetUserByID(id int64) (*domain.User, error) {
	ctx := context.Background()
	key := cache.UserCacheKey(id)

	var user *domain.User
	err := s.cacheManager.ReadThrough(ctx, key, &user, func() (interface{}, error) {
		return s.userService.GetUserByID(id)
	}, cache.MediumExpiration)

	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error("Cache read-through error for user", map[string]interface{}{
			"user_id": id,
			"error":   err.Error(),
		})
		return s.userService.GetUserByID(id)
	}

	return user, nil
}

func (s *CachedUserService) GetEmployerByID(id int64) (*domain.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleEmployer {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *CachedUserService) GetJobSeekerByID(id int64) (*domain.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleJobSeeker {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *CachedUserService) UpdateProfile(principal domain.Principal, input *domain.UpdateProfileInput) (*domain.User, error) {
	user, err := s.userService.UpdateProfile(principal, input)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := cache.InvalidateUserCache(ctx, s.cache, user.ID); err != nil {
		s.logger.Error("Kullanıcı önbelleği temizlenemedi", map[string]interface{}{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	return user, nil
}
