package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound        = errors.New("kullanıcı bulunamadı")
	ErrJobNotFound         = errors.New("iş ilanı bulunamadı")
	ErrApplicationNotFound = errors.New("başvuru bulunamadı")
	ErrEmailTaken          = errors.New("bu e-posta adresi zaten kullanılıyor")
	ErrAlreadyApplied      = errors.New("bu ilana zaten başvuruldu")
	ErrInvalidCredentials  = errors.New("geçersiz e-posta veya şifre")
	ErrInvalidToken        = errors.New("geçersiz oturum anahtarı")
	ErrTokenExpired        = errors.New("oturum süresi dolmuş")
	ErrUnauthenticated     = errors.New("kimlik doğrulaması gerekli")
	ErrForbidden           = errors.New("bu işlem için yetki yok")
	ErrValidation          = errors.New("doğrulama hatası")
)

func NewValidationError(field, message string) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, field, message)
}
