package domain

import "strings"

const MinPasswordLength = 8

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Company  string `json:"company"`
}

func (in *RegisterInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name", "isim zorunlu")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return NewValidationError("email", "geçerli bir e-posta adresi girilmeli")
	}
	if len(in.Password) < MinPasswordLength {
		return NewValidationError("password", "şifre en az 8 karakter olmalı")
	}
	if in.Role != "" && !Role(in.Role).Valid() {
		return NewValidationError("role", "geçersiz rol")
	}
	if Role(in.Role) == RoleEmployer && strings.TrimSpace(in.Company) == "" {
		return NewValidationError("company", "işveren hesapları için şirket adı zorunlu")
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Validate() error {
	if strings.TrimSpace(in.Email) == "" {
		return NewValidationError("email", "e-posta adresi zorunlu")
	}
	if in.Password == "" {
		return NewValidationError("password", "şifre zorunlu")
	}
	return nil
}

type AuthService interface {
	Register(input *RegisterInput) (*User, string, error)
	Login(input *LoginInput) (*User, string, error)
	ResolveToken(token string) (Principal, error)
}
