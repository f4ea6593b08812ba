package cache

import (
	"context"
	"fmt"
	"time"

	"jobport/internal/domain"
	"jobport/pkg/logger"
)

// WarmUpManager preloads the cache with the listings most visitors hit
// first: the opening pages of open jobs and their detail records.
type WarmUpManager struct {
	cache      Cache
	logger     logger.Logger
	jobService domain.JobService
}

func NewWarmUpManager(cache Cache, logger logger.Logger, jobService domain.JobService) *WarmUpManager {
	return &WarmUpManager{
		cache:      cache,
		logger:     logger,
		jobService: jobService,
	}
}

func (w *WarmUpManager) WarmUpJobs(ctx context.Context) error {
	w.logger.Info("Cache warm-up başlatılıyor", map[string]interface{}{})
	start := time.Now()

	filter := &domain.JobFilter{
		Status:   string(domain.JobStatusOpen),
		Page:     1,
		PageSize: domain.DefaultPageSize,
	}

	jobs, _, err := w.jobService.ListJobs(filter)
	if err != nil {
		w.logger.Error("Cache warm-up hatası", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("cache warm-up tamamlanamadı: %w", err)
	}

	warmed := 0
	for _, job := range jobs {
		// Liste satırları başvuru özetlerini taşımaz; detay anahtarına
		// her zaman GetJob'un döndürdüğü tam şekil yazılır.
		detail, err := w.jobService.GetJob(job.ID)
		if err != nil {
			w.logger.Error("İlan detayı alınamadı", map[string]interface{}{"job_id": job.ID, "error": err.Error()})
			continue
		}
		if err := w.cache.Set(ctx, JobCacheKey(job.ID), detail, ShortExpiration); err != nil {
			w.logger.Error("İlan önbelleğe alınamadı", map[string]interface{}{"job_id": job.ID, "error": err.Error()})
			continue
		}
		warmed++
	}

	w.logger.Info("Cache warm-up tamamlandı", map[string]interface{}{
		"jobs":     warmed,
		"duration": time.Since(start),
	})
	return nil
}
