package api

import (
	"net/http"
	"strconv"

	"jobport/internal/api/middleware"
	"jobport/internal/domain"
	"jobport/pkg/logger"
)

// AuditLogHandler exposes the audit trail to administrators.
type AuditLogHandler struct {
	service domain.AuditLogService
	auth    func(http.HandlerFunc) http.HandlerFunc
	logger  logger.Logger
}

func NewAuditLogHandler(service domain.AuditLogService, auth func(http.HandlerFunc) http.HandlerFunc, logger logger.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *AuditLogHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	principal, ok := middleware.Principal(r)
	if !ok {
		http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return false
	}
	if !principal.IsAdmin() {
		http.Error(w, domain.ErrForbidden.Error(), http.StatusForbidden)
		return false
	}
	return true
}

func (h *AuditLogHandler) GetAllLogs(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page := 1
	pageSize := 50

	var err error
	if pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			h.logger.Error("Geçersiz sayfa numarası", map[string]interface{}{"page": pageStr})
			http.Error(w, "Geçersiz sayfa numarası", http.StatusBadRequest)
			return
		}
	}

	if pageSizeStr != "" {
		pageSize, err = strconv.Atoi(pageSizeStr)
		if err != nil || pageSize < 1 || pageSize > 100 {
			h.logger.Error("Geçersiz sayfa boyutu", map[string]interface{}{"page_size": pageSizeStr})
			http.Error(w, "Geçersiz sayfa boyutu. 1-100 arası bir değer olmalı", http.StatusBadRequest)
			return
		}
	}

	logs, err := h.service.GetAllLogs(page, pageSize)
	if err != nil {
		h.logger.Error("Denetim günlükleri alınamadı", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

func (h *AuditLogHandler) GetEntityLogs(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	entityTypeStr := r.URL.Query().Get("entity_type")
	entityIDStr := r.URL.Query().Get("entity_id")

	if entityTypeStr == "" {
		h.logger.Error("entity_type parametresi eksik", map[string]interface{}{})
		http.Error(w, "entity_type parametresi eksik", http.StatusBadRequest)
		return
	}

	if entityIDStr == "" {
		h.logger.Error("entity_id parametresi eksik", map[string]interface{}{})
		http.Error(w, "entity_id parametresi eksik", http.StatusBadRequest)
		return
	}

	entityType := domain.EntityType(entityTypeStr)
	switch entityType {
	case domain.EntityTypeUser, domain.EntityTypeJob, domain.EntityTypeApplication:
	default:
		h.logger.Error("Geçersiz entity_type", map[string]interface{}{"entity_type": entityTypeStr})
		http.Error(w, "Geçersiz entity_type. Geçerli değerler: user, job, application", http.StatusBadRequest)
		return
	}

	entityID, err := strconv.ParseInt(entityIDStr, 10, 64)
	if err != nil {
		h.logger.Error("Geçersiz entity_id formatı", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz entity_id formatı", http.StatusBadRequest)
		return
	}

	logs, err := h.service.GetEntityLogs(entityType, entityID)
	if err != nil {
		h.logger.Error("Varlık denetim günlükleri alınamadı", map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   entityID,
			"error":       err.Error(),
		})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

func (h *AuditLogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/audit-logs", h.auth(h.GetAllLogs))
	mux.HandleFunc("GET /api/entity-logs", h.auth(h.GetEntityLogs))
}
