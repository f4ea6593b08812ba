package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUserJSONNeverExposesPasswordHash(t *testing.T) {
	user := &User{
		ID:           1,
		Name:         "Ayşe Yılmaz",
		Email:        "ayse@example.com",
		PasswordHash: "$2a$10$gizlisifreozeti",
		Role:         RoleJobSeeker,
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal() hata: %v", err)
	}

	if strings.Contains(string(data), "gizlisifreozeti") {
		t.Fatalf("şifre özeti JSON çıktısında yer almamalı: %s", data)
	}
	if strings.Contains(string(data), "password") {
		t.Fatalf("şifre alanı JSON çıktısında yer almamalı: %s", data)
	}
}

func TestPublicEmployer(t *testing.T) {
	user := &User{
		ID:      7,
		Name:    "Mehmet Demir",
		Email:   "mehmet@example.com",
		Role:    RoleEmployer,
		Company: "Acme Yazılım",
		Phone:   "5551234567",
	}

	pub := user.PublicEmployer()

	if pub.ID != 7 || pub.Name != "Mehmet Demir" || pub.Company != "Acme Yazılım" {
		t.Fatalf("PublicEmployer() = %+v beklenen alanlar eşleşmiyor", pub)
	}

	data, err := json.Marshal(pub)
	if err != nil {
		t.Fatalf("Marshal() hata: %v", err)
	}
	for _, hidden := range []string{"email", "phone"} {
		if strings.Contains(string(data), hidden) {
			t.Fatalf("işveren profili %q alanını açığa çıkarmamalı: %s", hidden, data)
		}
	}
}

func TestPublicApplicant(t *testing.T) {
	user := &User{
		ID:         3,
		Name:       "Zeynep Kaya",
		Email:      "zeynep@example.com",
		Role:       RoleJobSeeker,
		Skills:     []string{"Go", "Docker"},
		Experience: 4,
		Location:   "Ankara",
		Phone:      "5559876543",
		Bio:        "Backend geliştiricisi",
	}

	pub := user.PublicApplicant()

	if pub.Name != "Zeynep Kaya" || pub.Email != "zeynep@example.com" {
		t.Fatalf("PublicApplicant() = %+v beklenen alanlar eşleşmiyor", pub)
	}
	if len(pub.Skills) != 2 || pub.Experience != 4 || pub.Location != "Ankara" {
		t.Fatalf("PublicApplicant() = %+v profil alanları eksik", pub)
	}

	data, err := json.Marshal(pub)
	if err != nil {
		t.Fatalf("Marshal() hata: %v", err)
	}
	for _, hidden := range []string{"phone", "bio"} {
		if strings.Contains(string(data), hidden) {
			t.Fatalf("başvuran profili %q alanını açığa çıkarmamalı: %s", hidden, data)
		}
	}
}

func TestRoleValid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleJobSeeker, true},
		{RoleEmployer, true},
		{RoleAdmin, true},
		{Role("moderator"), false},
		{Role(""), false},
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.want {
			t.Fatalf("Role(%q).Valid() = %v, want %v", tt.role, got, tt.want)
		}
	}
}
