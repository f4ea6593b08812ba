package concurrent

import (
	"sync/atomic"
	"testing"
	"time"

	"jobport/internal/domain"
)

type stubJobRepo struct {
	sweeps    atomic.Int64
	corrected int64
}

func (s *stubJobRepo) FindByID(id int64) (*domain.Job, error) { return nil, nil }
func (s *stubJobRepo) List(f *domain.JobFilter) ([]*domain.Job, int64, error) {
	return nil, 0, nil
}
func (s *stubJobRepo) Create(job *domain.Job) error                 { return nil }
func (s *stubJobRepo) Update(job *domain.Job) error                 { return nil }
func (s *stubJobRepo) Delete(id int64) error                        { return nil }
func (s *stubJobRepo) CountApplications(jobID int64) (int64, error) { return 0, nil }
func (s *stubJobRepo) SetApplicationCount(jobID, count int64) error { return nil }

func (s *stubJobRepo) ReconcileApplicationCounts() (int64, error) {
	s.sweeps.Add(1)
	return s.corrected, nil
}

func TestReconcilerSweepsOnInterval(t *testing.T) {
	repo := &stubJobRepo{corrected: 1}

	reconciler := NewCountReconciler(repo, 10*time.Millisecond, testLogger())
	reconciler.Start()
	defer reconciler.Stop()

	deadline := time.After(2 * time.Second)
	for repo.sweeps.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("mutabakat tetiklenmedi, tur sayısı: %d", repo.sweeps.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestReconcilerStopHaltsSweeps(t *testing.T) {
	repo := &stubJobRepo{}

	reconciler := NewCountReconciler(repo, 5*time.Millisecond, testLogger())
	reconciler.Start()
	time.Sleep(20 * time.Millisecond)
	reconciler.Stop()

	after := repo.sweeps.Load()
	time.Sleep(30 * time.Millisecond)

	if repo.sweeps.Load() != after {
		t.Fatalf("durdurulduktan sonra mutabakat çalışmamalı")
	}
}

func TestReconcilerSingleSweep(t *testing.T) {
	repo := &stubJobRepo{corrected: 3}

	reconciler := NewCountReconciler(repo, time.Hour, testLogger())
	reconciler.Sweep()

	if repo.sweeps.Load() != 1 {
		t.Fatalf("tek tur beklenirken %d tur çalıştı", repo.sweeps.Load())
	}
}
