package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobport/internal/domain"
)

type pagedJobService struct {
	jobs []*domain.Job
}

func newPagedJobService(count int) *pagedJobService {
	service := &pagedJobService{}
	for i := 1; i <= count; i++ {
		service.jobs = append(service.jobs, &domain.Job{
			ID:     int64(i),
			Title:  fmt.Sprintf("İlan %d", i),
			Status: domain.JobStatusOpen,
		})
	}
	return service
}

func (s *pagedJobService) ListJobs(filter *domain.JobFilter) ([]*domain.Job, int64, error) {
	filter.Normalize()
	total := int64(len(s.jobs))

	start := (filter.Page - 1) * filter.PageSize
	if start >= len(s.jobs) {
		return nil, total, nil
	}
	end := start + filter.PageSize
	if end > len(s.jobs) {
		end = len(s.jobs)
	}
	return s.jobs[start:end], total, nil
}

func (s *pagedJobService) GetJob(id int64) (*domain.Job, error) { return nil, domain.ErrJobNotFound }

func (s *pagedJobService) CreateJob(principal domain.Principal, input *domain.CreateJobInput) (*domain.Job, error) {
	return nil, nil
}

func (s *pagedJobService) UpdateJob(principal domain.Principal, id int64, input *domain.UpdateJobInput) (*domain.Job, error) {
	return nil, nil
}

func (s *pagedJobService) DeleteJob(principal domain.Principal, id int64) error { return nil }
func (s *pagedJobService) ReconcileApplicationCount(jobID int64) error          { return nil }

func passthroughAuth(next http.HandlerFunc) http.HandlerFunc { return next }

func TestListJobsPagination(t *testing.T) {
	handler := NewJobHandler(newPagedJobService(25), nil, passthroughAuth, testLogger())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantPage  int
		wantTotal int64
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"ilk sayfa", "?page=1&page_size=10", 10, 1, 25, 3, true, false},
		{"orta sayfa", "?page=2&page_size=10", 10, 2, 25, 3, true, true},
		{"son sayfa kısmi", "?page=3&page_size=10", 5, 3, 25, 3, false, true},
		{"varsayılan sayfa boyutu", "", 10, 1, 25, 3, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + "/api/jobs" + tt.query)
			if err != nil {
				t.Fatalf("istek gönderilemedi: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("beklenen durum 200, dönen %d", resp.StatusCode)
			}

			var list JobListResponse
			if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
				t.Fatalf("yanıt decode edilemedi: %v", err)
			}

			if len(list.Jobs) != tt.wantCount {
				t.Fatalf("beklenen %d ilan, dönen %d", tt.wantCount, len(list.Jobs))
			}
			if list.Page != tt.wantPage || list.Total != tt.wantTotal || list.TotalPages != tt.wantPages {
				t.Fatalf("sayfalama alanları yanlış: page=%d total=%d total_pages=%d", list.Page, list.Total, list.TotalPages)
			}
			if list.HasNext != tt.wantNext {
				t.Fatalf("has_next %v olmalı", tt.wantNext)
			}
			if list.HasPrev != tt.wantPrev {
				t.Fatalf("has_prev %v olmalı", tt.wantPrev)
			}
		})
	}
}
