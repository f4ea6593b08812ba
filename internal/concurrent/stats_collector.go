package concurrent

import (
	"sync/atomic"
	"time"
)

type Stats struct {
	Submitted      int64
	Completed      int64
	Failed         int64
	Rejected       int64
	AvgProcessTime time.Duration
}

// StatsCollector keeps lock-free counters for the audit worker pool.
type StatsCollector struct {
	submitted      int64
	completed      int64
	failed         int64
	rejected       int64
	totalProcTime  int64
	processedCount int64
}

func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

func (sc *StatsCollector) IncrementSubmitted() {
	atomic.AddInt64(&sc.submitted, 1)
}

func (sc *StatsCollector) IncrementCompleted() {
	atomic.AddInt64(&sc.completed, 1)
}

func (sc *StatsCollector) IncrementFailed() {
	atomic.AddInt64(&sc.failed, 1)
}

func (sc *StatsCollector) IncrementRejected() {
	atomic.AddInt64(&sc.rejected, 1)
}

func (sc *StatsCollector) RecordProcessingTime(d time.Duration) {
	atomic.AddInt64(&sc.totalProcTime, d.Nanoseconds())
	atomic.AddInt64(&sc.processedCount, 1)
}

func (sc *StatsCollector) GetStats() Stats {
	stats := Stats{
		Submitted: atomic.LoadInt64(&sc.submitted),
		Completed: atomic.LoadInt64(&sc.completed),
		Failed:    atomic.LoadInt64(&sc.failed),
		Rejected:  atomic.LoadInt64(&sc.rejected),
	}

	if count := atomic.LoadInt64(&sc.processedCount); count > 0 {
		stats.AvgProcessTime = time.Duration(atomic.LoadInt64(&sc.totalProcTime) / count)
	}

	return stats
}
