package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"jobport/internal/api/middleware"
	"jobport/internal/domain"
	"jobport/pkg/logger"
)

type JobHandler struct {
	jobs         domain.JobService
	applications domain.ApplicationService
	auth         func(http.HandlerFunc) http.HandlerFunc
	logger       logger.Logger
}

type JobListResponse struct {
	Jobs       []*domain.Job `json:"jobs"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	HasNext    bool          `json:"has_next"`
	HasPrev    bool          `json:"has_prev"`
}

func NewJobHandler(jobs domain.JobService, applications domain.ApplicationService, auth func(http.HandlerFunc) http.HandlerFunc, logger logger.Logger) *JobHandler {
	return &JobHandler{
		jobs:         jobs,
		applications: applications,
		auth:         auth,
		logger:       logger,
	}
}

func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r)
	if !ok {
		http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return
	}

	var input domain.CreateJobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	job, err := h.jobs.CreateJob(principal, &input)
	if err != nil {
		h.logger.Error("İlan oluşturma hatası", map[string]interface{}{"employer_id": principal.UserID, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	filter := parseJobFilter(r)

	jobs, total, err := h.jobs.ListJobs(filter)
	if err != nil {
		h.logger.Error("İlan listesi alınamadı", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))

	writeJSON(w, http.StatusOK, JobListResponse{
		Jobs:       jobs,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
		HasNext:    filter.Page < totalPages,
		HasPrev:    filter.Page > 1,
	})
}

func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.logger.Error("Geçersiz ID formatı", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz ID formatı", http.StatusBadRequest)
		return
	}

	job, err := h.jobs.GetJob(id)
	if err != nil {
		h.logger.Error("İlan bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r)
	if !ok {
		http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.logger.Error("Geçersiz ID formatı", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz ID formatı", http.StatusBadRequest)
		return
	}

	var input domain.UpdateJobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	job, err := h.jobs.UpdateJob(principal, id, &input)
	if err != nil {
		h.logger.Error("İlan güncelleme hatası", map[string]interface{}{"id": id, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r)
	if !ok {
		http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.logger.Error("Geçersiz ID formatı", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz ID formatı", http.StatusBadRequest)
		return
	}

	if err := h.jobs.DeleteJob(principal, id); err != nil {
		h.logger.Error("İlan silme hatası", map[string]interface{}{"id": id, "error": err.Error()})
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *JobHandler) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r)
	if !ok {
		http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.logger.Error("Geçersiz ID formatı", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz ID formatı", http.StatusBadRequest)
		return
	}

	applications, err := h.applications.ListForJob(principal, id)
	if err != nil {
		h.logger.Error("İlan başvuruları alınamadı", map[string]interface{}{"job_id": id, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, applications)
}

func (h *JobHandler) ReconcileApplications(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r)
	if !ok {
		http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return
	}

	if !principal.IsAdmin() {
		http.Error(w, domain.ErrForbidden.Error(), http.StatusForbidden)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.logger.Error("Geçersiz ID formatı", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz ID formatı", http.StatusBadRequest)
		return
	}

	if err := h.jobs.ReconcileApplicationCount(id); err != nil {
		h.logger.Error("Başvuru sayacı düzeltilemedi", map[string]interface{}{"job_id": id, "error": err.Error()})
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseJobFilter(r *http.Request) *domain.JobFilter {
	q := r.URL.Query()

	filter := &domain.JobFilter{
		Status:   q.Get("status"),
		JobType:  q.Get("job_type"),
		Category: q.Get("category"),
		Location: q.Get("location"),
		Search:   q.Get("search"),
	}

	if skills := q.Get("skills"); skills != "" {
		for _, skill := range strings.Split(skills, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				filter.Skills = append(filter.Skills, skill)
			}
		}
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = page
	}
	if pageSize, err := strconv.Atoi(q.Get("page_size")); err == nil {
		filter.PageSize = pageSize
	}

	filter.Normalize()
	return filter
}

func (h *JobHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/jobs", h.auth(h.CreateJob))
	mux.HandleFunc("GET /api/jobs", h.ListJobs)
	mux.HandleFunc("GET /api/jobs/{id}", h.GetJob)
	mux.HandleFunc("PUT /api/jobs/{id}", h.auth(h.UpdateJob))
	mux.HandleFunc("DELETE /api/jobs/{id}", h.auth(h.DeleteJob))
	mux.HandleFunc("GET /api/jobs/{id}/applications", h.auth(h.ListJobApplications))
	mux.HandleFunc("POST /api/jobs/{id}/reconcile", h.auth(h.ReconcileApplications))
}
