package service

import (
	"context"
	"errors"

	"jobport/internal/domain"
	"jobport/pkg/cache"
	"jobport/pkg/logger"
)

// CachedJobService wraps JobService with read-through caching for the
// public read paths and invalidation on every mutation.
type CachedJobService struct {
	jobService   domain.JobService
	cache        cache.Cache
	cacheManager cache.CacheStrategy
	logger       logger.Logger
}

type cachedJobList struct {
	Jobs  []*domain.Job `json:"jobs"`
	Total int64         `json:"total"`
}

func NewCachedJobService(
	jobService domain.JobService,
	cacheInstance cache.Cache,
	cacheManager cache.CacheStrategy,
	logger logger.Logger,
) domain.JobService {
	return &CachedJobService{
		jobService:   jobService,
		cache:        cacheInstance,
		cacheManager: cacheManager,
		logger:       logger,
	}
}

func (s *CachedJobService) GetJob(id int64) (*domain.Job, error) {
	ctx := context.Background()
	key := cache.JobCacheKey(id)

	var job *domain.Job
	err := s.cacheManager.ReadThrough(ctx, key, &job, func() (interface{}, error) {
		return s.jobService.GetJob(id)
	}, cache.ShortExpiration)

	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return nil, err
		}
		s.logger.Error("Cache read-through error for job", map[string]interface{}{
			"job_id": id,
			"error":  err.Error(),
		})
		return s.jobService.GetJob(id)
	}

	return job, nil
}

func (s *CachedJobService) ListJobs(filter *domain.JobFilter) ([]*domain.Job, int64, error) {
	ctx := context.Background()
	filter.Normalize()
	key := cache.JobListCacheKey(filter)

	var list cachedJobList
	err := s.cacheManager.ReadThrough(ctx, key, &list, func() (interface{}, error) {
		jobs, total, err := s.jobService.ListJobs(filter)
		if err != nil {
			return nil, err
		}
		return &cachedJobList{Jobs: jobs, Total: total}, nil
	}, cache.ShortExpiration)

	if err != nil {
		s.logger.Error("Cache read-through error for job list", map[string]interface{}{
			"error": err.Error(),
		})
		return s.jobService.ListJobs(filter)
	}

	return list.Jobs, list.Total, nil
}

func (s *CachedJobService) CreateJob(principal domain.Principal, input *domain.CreateJobInput) (*domain.Job, error) {
	job, err := s.jobService.CreateJob(principal, input)
	if err != nil {
		return nil, err
	}

	s.invalidate(job.ID)
	return job, nil
}

func (s *CachedJobService) UpdateJob(principal domain.Principal, id int64, input *domain.UpdateJobInput) (*domain.Job, error) {
	job, err := s.jobService.UpdateJob(principal, id, input)
	if err != nil {
		return nil, err
	}

	s.invalidate(id)
	return job, nil
}

func (s *CachedJobService) DeleteJob(principal domain.Principal, id int64) error {
	if err := s.jobService.DeleteJob(principal, id); err != nil {
		return err
	}

	s.invalidate(id)
	return nil
}

func (s *CachedJobService) ReconcileApplicationCount(jobID int64) error {
	if err := s.jobService.ReconcileApplicationCount(jobID); err != nil {
		return err
	}

	s.invalidate(jobID)
	return nil
}

func (s *CachedJobService) invalidate(jobID int64) {
	ctx := context.Background()
	if err := cache.InvalidateJobCache(ctx, s.cache, jobID); err != nil {
		s.logger.Error("İlan önbelleği temizlenemedi", map[string]interface{}{
			"job_id": jobID,
			"error":  err.Error(),
		})
	}
}
