package api

import (
	"encoding/json"
	"net/http"

	"jobport/internal/api/middleware"
	"jobport/internal/domain"
	"jobport/pkg/logger"
)

type AuthHandler struct {
	service domain.AuthService
	users   domain.UserService
	auth    func(http.HandlerFunc) http.HandlerFunc
	logger  logger.Logger
}

type AuthResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func NewAuthHandler(service domain.AuthService, users domain.UserService, auth func(http.HandlerFunc) http.HandlerFunc, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		users:   users,
		auth:    auth,
		logger:  logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.RegisterInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	user, token, err := h.service.Register(&input)
	if err != nil {
		h.logger.Error("Kayıt hatası", map[string]interface{}{"email": input.Email, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{User: user, Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.LoginInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	user, token, err := h.service.Login(&input)
	if err != nil {
		h.logger.Error("Giriş hatası", map[string]interface{}{"email": input.Email, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r)
	if !ok {
		http.Error(w, domain.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetUserByID(principal.UserID)
	if err != nil {
		h.logger.Error("Kullanıcı bulunamadı", map[string]interface{}{"id": principal.UserID, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("GET /api/auth/me", h.auth(h.Me))
}
