package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"jobport/internal/api/middleware"
	"jobport/internal/domain"
	"jobport/pkg/logger"
)

type UserHandler struct {
	service domain.UserService
	auth    func(http.HandlerFunc) http.HandlerFunc
	logger  logger.Logger
}

func NewUserHandler(service domain.UserService, auth func(http.HandlerFunc) http.HandlerFunc, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r)
	if !ok {
		http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return
	}

	var input domain.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateProfile(principal, &input)
	if err != nil {
		h.logger.Error("Profil güncelleme hatası", map[string]interface{}{"id": principal.UserID, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetEmployer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.logger.Error("Geçersiz ID formatı", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz ID formatı", http.StatusBadRequest)
		return
	}

	user, err := h.service.GetEmployerByID(id)
	if err != nil {
		h.logger.Error("İşveren bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.PublicEmployer())
}

func (h *UserHandler) GetJobSeeker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.logger.Error("Geçersiz ID formatı", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz ID formatı", http.StatusBadRequest)
		return
	}

	user, err := h.service.GetJobSeekerByID(id)
	if err != nil {
		h.logger.Error("İş arayan bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.PublicApplicant())
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("PUT /api/users/profile", h.auth(h.UpdateProfile))
	mux.HandleFunc("GET /api/users/employers/{id}", h.GetEmployer)
	mux.HandleFunc("GET /api/users/job-seekers/{id}", h.GetJobSeeker)
}
