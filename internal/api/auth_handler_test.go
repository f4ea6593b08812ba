package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobport/internal/api/middleware"
	"jobport/internal/domain"
	"jobport/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(logger.ErrorLevel, io.Discard)
}

type fakeAuthService struct {
	user      *domain.User
	token     string
	principal domain.Principal
}

func (f *fakeAuthService) Register(input *domain.RegisterInput) (*domain.User, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}
	return f.user, f.token, nil
}

func (f *fakeAuthService) Login(input *domain.LoginInput) (*domain.User, string, error) {
	return f.user, f.token, nil
}

func (f *fakeAuthService) ResolveToken(token string) (domain.Principal, error) {
	if token != f.token {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	return f.principal, nil
}

type fakeUserService struct {
	user *domain.User
}

func (f *fakeUserService) GetUserByID(id int64) (*domain.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUserService) GetEmployerByID(id int64) (*domain.User, error)  { return f.GetUserByID(id) }
func (f *fakeUserService) GetJobSeekerByID(id int64) (*domain.User, error) { return f.GetUserByID(id) }

func (f *fakeUserService) UpdateProfile(principal domain.Principal, input *domain.UpdateProfileInput) (*domain.User, error) {
	return f.user, nil
}

func newAuthTestServer(t *testing.T) (*httptest.Server, *fakeAuthService) {
	t.Helper()

	user := &domain.User{
		ID:           7,
		Name:         "Ayşe Yılmaz",
		Email:        "ayse@example.com",
		PasswordHash: "$2a$10$gizlihashdegeri",
		Role:         domain.RoleJobSeeker,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	authService := &fakeAuthService{
		user:      user,
		token:     "gecerli-token",
		principal: domain.Principal{UserID: user.ID, Role: user.Role, Name: user.Name},
	}

	auth := middleware.Auth(authService)
	handler := NewAuthHandler(authService, &fakeUserService{user: user}, auth, testLogger())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, authService
}

func TestRegisterResponseHidesPasswordHash(t *testing.T) {
	server, _ := newAuthTestServer(t)

	body := `{"name":"Ayşe Yılmaz","email":"ayse@example.com","password":"cokgizli123"}`
	resp, err := http.Post(server.URL+"/api/auth/register", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("istek gönderilemedi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("beklenen durum 201, dönen %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("yanıt okunamadı: %v", err)
	}

	if strings.Contains(string(payload), "gizlihash") || strings.Contains(string(payload), "password") {
		t.Fatalf("yanıt şifre özetini sızdırıyor: %s", payload)
	}
	if !strings.Contains(string(payload), `"token":"gecerli-token"`) {
		t.Fatalf("yanıt token içermeli: %s", payload)
	}
}

func TestRegisterValidationFailureReturns400(t *testing.T) {
	server, _ := newAuthTestServer(t)

	body := `{"name":"","email":"ayse@example.com","password":"cokgizli123"}`
	resp, err := http.Post(server.URL+"/api/auth/register", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("istek gönderilemedi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("beklenen durum 400, dönen %d", resp.StatusCode)
	}
}

func TestMeRequiresBearerToken(t *testing.T) {
	server, authService := newAuthTestServer(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"başlık yok", "", http.StatusUnauthorized},
		{"bearer öneki yok", authService.token, http.StatusUnauthorized},
		{"geçersiz token", "Bearer sahte-token", http.StatusUnauthorized},
		{"geçerli token", "Bearer " + authService.token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, server.URL+"/api/auth/me", nil)
			if err != nil {
				t.Fatalf("istek oluşturulamadı: %v", err)
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("istek gönderilemedi: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.want {
				t.Fatalf("beklenen durum %d, dönen %d", tt.want, resp.StatusCode)
			}

			if tt.want == http.StatusOK {
				payload, _ := io.ReadAll(resp.Body)
				if !strings.Contains(string(payload), `"email":"ayse@example.com"`) {
					t.Fatalf("yanıt kullanıcıyı içermeli: %s", payload)
				}
				if strings.Contains(string(payload), "gizlihash") {
					t.Fatalf("yanıt şifre özetini sızdırıyor: %s", payload)
				}
			}
		})
	}
}
