package concurrent

import (
	"context"
	"sync"
	"time"

	"jobport/internal/domain"
	"jobport/pkg/logger"
	"jobport/pkg/metrics"
)

type AuditProcessor = func(log *domain.AuditLog) error

// WorkerPool drains audit records onto the database without blocking the
// request path. Implements domain.AuditRecorder.
type WorkerPool struct {
	numWorkers     int
	jobQueue       chan *domain.AuditLog
	processor      AuditProcessor
	wg             sync.WaitGroup
	ctx            context.Context
	cancel         context.CancelFunc
	logger         logger.Logger
	started        bool
	mutex          sync.Mutex
	statsCollector *StatsCollector
}

func NewWorkerPool(numWorkers int, queueSize int, processor AuditProcessor, logger logger.Logger) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		numWorkers:     numWorkers,
		jobQueue:       make(chan *domain.AuditLog, queueSize),
		processor:      processor,
		ctx:            ctx,
		cancel:         cancel,
		logger:         logger,
		started:        false,
		statsCollector: NewStatsCollector(),
	}
}

func (wp *WorkerPool) Start() {
	wp.mutex.Lock()
	defer wp.mutex.Unlock()

	if wp.started {
		return
	}

	wp.logger.Info("İşçi havuzu başlatılıyor", map[string]interface{}{
		"num_workers": wp.numWorkers,
		"queue_size":  cap(wp.jobQueue),
	})

	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		workerID := i
		go func() {
			defer wp.wg.Done()
			wp.worker(workerID)
		}()
	}

	wp.started = true
	metrics.UpdateWorkerPoolStats(len(wp.jobQueue), wp.numWorkers)
}

func (wp *WorkerPool) Stop() {
	wp.mutex.Lock()
	if !wp.started {
		wp.mutex.Unlock()
		return
	}
	wp.started = false
	wp.mutex.Unlock()

	wp.logger.Info("İşçi havuzu durduruluyor", map[string]interface{}{})
	wp.cancel()
	close(wp.jobQueue)
	wp.wg.Wait()
	metrics.UpdateWorkerPoolStats(0, 0)
}

// Record queues an audit entry. Drops the entry when the pool is stopped
// or the queue is full; the audit trail is best effort.
func (wp *WorkerPool) Record(entityType domain.EntityType, entityID int64, action domain.ActionType, details string) {
	wp.Submit(&domain.AuditLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
		CreatedAt:  time.Now(),
	})
}

// Submit enqueues an entry without blocking. The lock spans both the
// started check and the send; Stop closes the queue only after flipping
// the flag under the same lock, so no send can race the close.
func (wp *WorkerPool) Submit(log *domain.AuditLog) bool {
	wp.mutex.Lock()
	defer wp.mutex.Unlock()

	if !wp.started {
		return false
	}

	select {
	case wp.jobQueue <- log:
		wp.statsCollector.IncrementSubmitted()
		metrics.UpdateWorkerPoolStats(len(wp.jobQueue), wp.numWorkers)
		return true
	default:
		wp.statsCollector.IncrementRejected()
		wp.logger.Warn("Denetim kuyruğu dolu, kayıt atlandı", map[string]interface{}{
			"entity_type": log.EntityType,
			"entity_id":   log.EntityID,
			"action":      log.Action,
		})
		return false
	}
}

func (wp *WorkerPool) worker(id int) {
	wp.logger.Info("İşçi başlatıldı", map[string]interface{}{"worker_id": id})

	for {
		select {
		case <-wp.ctx.Done():
			wp.logger.Info("İşçi durduruldu", map[string]interface{}{"worker_id": id})
			return
		case log, ok := <-wp.jobQueue:
			if !ok {
				wp.logger.Info("İş kuyruğu kapatıldı, işçi durduruluyor", map[string]interface{}{"worker_id": id})
				return
			}

			startTime := time.Now()
			err := wp.processor(log)
			processingTime := time.Since(startTime)
			metrics.UpdateWorkerPoolStats(len(wp.jobQueue), wp.numWorkers)

			if err != nil {
				wp.statsCollector.IncrementFailed()
				wp.logger.Error("Denetim kaydı yazılamadı", map[string]interface{}{
					"worker_id":       id,
					"entity_type":     log.EntityType,
					"entity_id":       log.EntityID,
					"action":          log.Action,
					"error":           err.Error(),
					"processing_time": processingTime.String(),
				})
			} else {
				wp.statsCollector.IncrementCompleted()
				wp.statsCollector.RecordProcessingTime(processingTime)
			}
		}
	}
}

func (wp *WorkerPool) GetStats() Stats {
	return wp.statsCollector.GetStats()
}

func (wp *WorkerPool) QueueLength() int {
	return len(wp.jobQueue)
}

func (wp *WorkerPool) QueueCapacity() int {
	return cap(wp.jobQueue)
}
