package service

import (
	"context"

	"jobport/internal/domain"
	"jobport/pkg/cache"
	"jobport/pkg/logger"
)

// CachedApplicationService wraps ApplicationService. Applications themselves
// are not cached, but every mutation touches the parent job (application
// counter, embedded summaries), so the job cache entries are invalidated.
type CachedApplicationService struct {
	applicationService domain.ApplicationService
	cache              cache.Cache
	logger             logger.Logger
}

func NewCachedApplicationService(
	applicationService domain.ApplicationService,
	cacheInstance cache.Cache,
	logger logger.Logger,
) domain.ApplicationService {
	return &CachedApplicationService{
		applicationService: applicationService,
		cache:              cacheInstance,
		logger:             logger,
	}
}

func (s *CachedApplicationService) Apply(principal domain.Principal, input *domain.ApplyInput) (*domain.Application, error) {
	application, err := s.applicationService.Apply(principal, input)
	if err != nil {
		return nil, err
	}

	s.invalidateJob(application.JobID)
	return application, nil
}

func (s *CachedApplicationService) ListForJob(principal domain.Principal, jobID int64) ([]*domain.Application, error) {
	return s.applicationService.ListForJob(principal, jobID)
}

func (s *CachedApplicationService) ListMine(principal domain.Principal) ([]*domain.Application, error) {
	return s.applicationService.ListMine(principal)
}

func (s *CachedApplicationService) UpdateStatus(principal domain.Principal, id int64, input *domain.UpdateApplicationStatusInput) (*domain.Application, error) {
	application, err := s.applicationService.UpdateStatus(principal, id, input)
	if err != nil {
		return nil, err
	}

	s.invalidateJob(application.JobID)
	return application, nil
}

func (s *CachedApplicationService) invalidateJob(jobID int64) {
	ctx := context.Background()
	if err := cache.InvalidateJobCache(ctx, s.cache, jobID); err != nil {
		s.logger.Error("İlan önbelleği temizlenemedi", map[string]interface{}{
			"job_id": jobID,
			"error":  err.Error(),
		})
	}
}
