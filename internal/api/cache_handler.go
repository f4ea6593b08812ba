package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jobport/internal/api/middleware"
	"jobport/internal/domain"
	"jobport/pkg/cache"
	"jobport/pkg/logger"
)

// CacheHandler exposes cache administration to administrators.
type CacheHandler struct {
	cache         cache.Cache
	warmUpManager *cache.WarmUpManager
	auth          func(http.HandlerFunc) http.HandlerFunc
	logger        logger.Logger
}

type CacheStatsResponse struct {
	CacheType  string                 `json:"cache_type"`
	TotalKeys  int                    `json:"total_keys"`
	CacheStats map[string]interface{} `json:"cache_stats"`
	Timestamp  time.Time              `json:"timestamp"`
}

type CacheInvalidateRequest struct {
	Pattern *string `json:"pattern,omitempty"`
	JobID   *int64  `json:"job_id,omitempty"`
	UserID  *int64  `json:"user_id,omitempty"`
}

func NewCacheHandler(cacheInstance cache.Cache, warmUpManager *cache.WarmUpManager, auth func(http.HandlerFunc) http.HandlerFunc, logger logger.Logger) *CacheHandler {
	return &CacheHandler{
		cache:         cacheInstance,
		warmUpManager: warmUpManager,
		auth:          auth,
		logger:        logger,
	}
}

func (h *CacheHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
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

func (h *CacheHandler) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	keys, err := h.cache.GetKeys(r.Context(), "*")
	if err != nil {
		h.logger.Error("Cache keys alınamadı", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Cache stats could not be retrieved", http.StatusInternalServerError)
		return
	}

	stats := CacheStatsResponse{
		CacheType: "Redis",
		TotalKeys: len(keys),
		CacheStats: map[string]interface{}{
			"user_keys":     countKeysByPrefix(keys, "user:"),
			"job_keys":      countKeysByPrefix(keys, "job:"),
			"job_list_keys": countKeysByPrefix(keys, "jobs:list:"),
		},
		Timestamp: time.Now(),
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *CacheHandler) handleWarmUp(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.warmUpManager.WarmUpJobs(r.Context()); err != nil {
		h.logger.Error("Cache warm-up hatası", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Warm-up failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"timestamp": time.Now(),
	})
}

func (h *CacheHandler) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req CacheInvalidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	var err error

	switch {
	case req.Pattern != nil:
		err = h.cache.DeletePattern(ctx, *req.Pattern)
	case req.JobID != nil:
		err = cache.InvalidateJobCache(ctx, h.cache, *req.JobID)
	case req.UserID != nil:
		err = cache.InvalidateUserCache(ctx, h.cache, *req.UserID)
	default:
		http.Error(w, "pattern, job_id veya user_id belirtilmeli", http.StatusBadRequest)
		return
	}

	if err != nil {
		h.logger.Error("Cache invalidation hatası", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Cache invalidation failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"timestamp": time.Now(),
	})
}

func (h *CacheHandler) handleKeys(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		pattern = "*"
	}

	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	keys, err := h.cache.GetKeys(r.Context(), pattern)
	if err != nil {
		h.logger.Error("Cache keys alınamadı", map[string]interface{}{
			"pattern": pattern,
			"error":   err.Error(),
		})
		http.Error(w, "Error retrieving cache keys", http.StatusInternalServerError)
		return
	}

	if len(keys) > limit {
		keys = keys[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"keys":      keys,
		"count":     len(keys),
		"pattern":   pattern,
		"limit":     limit,
		"timestamp": time.Now(),
	})
}

func countKeysByPrefix(keys []string, prefix string) int {
	count := 0
	for _, key := range keys {
		if strings.HasPrefix(key, prefix) {
			count++
		}
	}
	return count
}

func (h *CacheHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/cache/stats", h.auth(h.handleCacheStats))
	mux.HandleFunc("POST /api/cache/warmup", h.auth(h.handleWarmUp))
	mux.HandleFunc("POST /api/cache/invalidate", h.auth(h.handleInvalidate))
	mux.HandleFunc("GET /api/cache/keys", h.auth(h.handleKeys))
}
