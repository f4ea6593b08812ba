package concurrent

import (
	"context"
	"sync"
	"time"

	"jobport/internal/domain"
	"jobport/pkg/logger"
)

// CountReconciler periodically recounts job application counters from the
// applications table. The counter is maintained transactionally on the
// write path; the sweep catches drift from out-of-band writes.
type CountReconciler struct {
	jobs     domain.JobRepository
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	logger   logger.Logger
	started  bool
	mutex    sync.Mutex
}

func NewCountReconciler(jobs domain.JobRepository, interval time.Duration, logger logger.Logger) *CountReconciler {
	ctx, cancel := context.WithCancel(context.Background())

	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &CountReconciler{
		jobs:     jobs,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
	}
}

func (cr *CountReconciler) Start() {
	cr.mutex.Lock()
	defer cr.mutex.Unlock()

	if cr.started {
		return
	}

	cr.logger.Info("Sayaç mutabakatı başlatılıyor", map[string]interface{}{
		"interval": cr.interval.String(),
	})

	cr.wg.Add(1)
	go func() {
		defer cr.wg.Done()
		cr.run()
	}()

	cr.started = true
}

func (cr *CountReconciler) Stop() {
	cr.mutex.Lock()
	if !cr.started {
		cr.mutex.Unlock()
		return
	}
	cr.started = false
	cr.mutex.Unlock()

	cr.logger.Info("Sayaç mutabakatı durduruluyor", map[string]interface{}{})
	cr.cancel()
	cr.wg.Wait()
}

func (cr *CountReconciler) run() {
	ticker := time.NewTicker(cr.interval)
	defer ticker.Stop()

	for {
		select {
		case <-cr.ctx.Done():
			return
		case <-ticker.C:
			cr.Sweep()
		}
	}
}

// Sweep runs a single reconciliation pass.
func (cr *CountReconciler) Sweep() {
	corrected, err := cr.jobs.ReconcileApplicationCounts()
	if err != nil {
		cr.logger.Error("Sayaç mutabakatı başarısız", map[string]interface{}{"error": err.Error()})
		return
	}

	if corrected > 0 {
		cr.logger.Warn("Sapmış başvuru sayaçları düzeltildi", map[string]interface{}{
			"corrected": corrected,
		})
	}
}
