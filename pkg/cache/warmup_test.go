package cache

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"jobport/internal/domain"
	"jobport/pkg/logger"
)

type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := m.entries[key]
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func (m *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.entries[key]
	return ok, nil
}

func (m *memoryCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (m *memoryCache) GetKeys(ctx context.Context, pattern string) ([]string, error) {
	return nil, nil
}
func (m *memoryCache) Ping(ctx context.Context) error { return nil }

// summaryJobService lists jobs in the bare list shape and attaches
// application summaries only on the detail read, matching the split
// between JobRepository.List and JobService.GetJob.
type summaryJobService struct {
	jobs map[int64]*domain.Job
}

func (s *summaryJobService) ListJobs(filter *domain.JobFilter) ([]*domain.Job, int64, error) {
	var out []*domain.Job
	for _, job := range s.jobs {
		bare := *job
		bare.Applications = nil
		out = append(out, &bare)
	}
	return out, int64(len(out)), nil
}

func (s *summaryJobService) GetJob(id int64) (*domain.Job, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

func (s *summaryJobService) CreateJob(principal domain.Principal, input *domain.CreateJobInput) (*domain.Job, error) {
	return nil, nil
}

func (s *summaryJobService) UpdateJob(principal domain.Principal, id int64, input *domain.UpdateJobInput) (*domain.Job, error) {
	return nil, nil
}

func (s *summaryJobService) DeleteJob(principal domain.Principal, id int64) error { return nil }
func (s *summaryJobService) ReconcileApplicationCount(jobID int64) error          { return nil }

func TestWarmUpJobsCachesDetailShape(t *testing.T) {
	job := &domain.Job{
		ID:     1,
		Title:  "Go Geliştirici",
		Status: domain.JobStatusOpen,
		Applications: []*domain.ApplicationSummary{
			{ID: 11, Status: domain.ApplicationPending, CreatedAt: time.Now()},
		},
	}

	cacheInstance := newMemoryCache()
	manager := NewWarmUpManager(cacheInstance, logger.New(logger.ErrorLevel, io.Discard), &summaryJobService{
		jobs: map[int64]*domain.Job{1: job},
	})

	if err := manager.WarmUpJobs(context.Background()); err != nil {
		t.Fatalf("warm-up başarısız: %v", err)
	}

	var cached domain.Job
	if err := cacheInstance.Get(context.Background(), JobCacheKey(1), &cached); err != nil {
		t.Fatalf("ısıtılan ilan okunamadı: %v", err)
	}

	if len(cached.Applications) != 1 {
		t.Fatalf("ısıtılan ilan %d başvuru özeti taşıyor, 1 bekleniyordu", len(cached.Applications))
	}
	if cached.Title != "Go Geliştirici" {
		t.Fatalf("beklenmeyen ilan başlığı: %q", cached.Title)
	}
}

func TestWarmUpJobsSkipsFailedDetail(t *testing.T) {
	gone := &domain.Job{ID: 2, Title: "Silinmiş İlan", Status: domain.JobStatusOpen}
	kept := &domain.Job{ID: 3, Title: "Kalan İlan", Status: domain.JobStatusOpen}

	cacheInstance := newMemoryCache()
	manager := NewWarmUpManager(cacheInstance, logger.New(logger.ErrorLevel, io.Discard), &stalePageJobService{
		page:    []*domain.Job{gone, kept},
		details: &summaryJobService{jobs: map[int64]*domain.Job{3: kept}},
	})

	if err := manager.WarmUpJobs(context.Background()); err != nil {
		t.Fatalf("warm-up başarısız: %v", err)
	}

	if _, ok := cacheInstance.entries[JobCacheKey(2)]; ok {
		t.Fatalf("detayı bulunamayan ilan önbelleğe yazılmamalı")
	}
	if _, ok := cacheInstance.entries[JobCacheKey(3)]; !ok {
		t.Fatalf("kalan ilan önbelleğe yazılmalı")
	}
}

// stalePageJobService returns a fixed listing page whose entries may no
// longer resolve on the detail read.
type stalePageJobService struct {
	page    []*domain.Job
	details *summaryJobService
}

func (s *stalePageJobService) ListJobs(filter *domain.JobFilter) ([]*domain.Job, int64, error) {
	return s.page, int64(len(s.page)), nil
}

func (s *stalePageJobService) GetJob(id int64) (*domain.Job, error) {
	return s.details.GetJob(id)
}

func (s *stalePageJobService) CreateJob(principal domain.Principal, input *domain.CreateJobInput) (*domain.Job, error) {
	return nil, nil
}

func (s *stalePageJobService) UpdateJob(principal domain.Principal, id int64, input *domain.UpdateJobInput) (*domain.Job, error) {
	return nil, nil
}

func (s *stalePageJobService) DeleteJob(principal domain.Principal, id int64) error { return nil }
func (s *stalePageJobService) ReconcileApplicationCount(jobID int64) error          { return nil }
