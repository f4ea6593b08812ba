package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobport/internal/domain"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"doğrulama hatası", domain.ErrValidation, http.StatusBadRequest},
		{"sarılmış doğrulama hatası", fmt.Errorf("%w: başlık zorunludur", domain.ErrValidation), http.StatusBadRequest},
		{"kayıtlı e-posta", domain.ErrEmailTaken, http.StatusBadRequest},
		{"mükerrer başvuru", domain.ErrAlreadyApplied, http.StatusBadRequest},
		{"kimliksiz istek", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"geçersiz kimlik bilgisi", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"geçersiz token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"süresi dolmuş token", domain.ErrTokenExpired, http.StatusUnauthorized},
		{"yetki yok", domain.ErrForbidden, http.StatusForbidden},
		{"kullanıcı yok", domain.ErrUserNotFound, http.StatusNotFound},
		{"ilan yok", domain.ErrJobNotFound, http.StatusNotFound},
		{"başvuru yok", domain.ErrApplicationNotFound, http.StatusNotFound},
		{"bilinmeyen hata", errors.New("disk dolu"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.want {
				t.Fatalf("beklenen durum %d, dönen %d", tt.want, got)
			}
		})
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, errors.New("pq: connection refused on 10.0.0.5"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("beklenen durum 500, dönen %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "10.0.0.5") || strings.Contains(body, "connection") {
		t.Fatalf("iç hata detayı yanıt gövdesine sızdı: %q", body)
	}
	if !strings.Contains(body, "Beklenmeyen bir hata oluştu") {
		t.Fatalf("genel hata mesajı bekleniyordu: %q", body)
	}
}

func TestWriteErrorKeepsDomainMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, domain.ErrJobNotFound)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("beklenen durum 404, dönen %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), domain.ErrJobNotFound.Error()) {
		t.Fatalf("alan hatası mesajı korunmalı: %q", rec.Body.String())
	}
}
