package api

import (
	"encoding/json"
	"net/http"

	"jobport/internal/api/middleware"
	"jobport/internal/domain"
	"jobport/pkg/logger"
)

type ApplicationHandler struct {
	service domain.ApplicationService
	auth    func(http.HandlerFunc) http.HandlerFunc
	logger  logger.Logger
}

func NewApplicationHandler(service domain.ApplicationService, auth func(http.HandlerFunc) http.HandlerFunc, logger logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r)
	if !ok {
		http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return
	}

	var input domain.ApplyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	application, err := h.service.Apply(principal, &input)
	if err != nil {
		h.logger.Error("Başvuru hatası", map[string]interface{}{
			"job_id":       input.JobID,
			"applicant_id": principal.UserID,
			"error":        err.Error(),
		})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, application)
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r)
	if !ok {
		http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return
	}

	applications, err := h.service.ListMine(principal)
	if err != nil {
		h.logger.Error("Başvuru listesi alınamadı", map[string]interface{}{"applicant_id": principal.UserID, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, applications)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	var input domain.UpdateApplicationStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	application, err := h.service.UpdateStatus(principal, id, &input)
	if err != nil {
		h.logger.Error("Başvuru durumu güncellenemedi", map[string]interface{}{"id": id, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, application)
}

func (h *ApplicationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/applications", h.auth(h.Apply))
	mux.HandleFunc("GET /api/applications/me", h.auth(h.ListMine))
	mux.HandleFunc("PUT /api/applications/{id}", h.auth(h.UpdateStatus))
}
