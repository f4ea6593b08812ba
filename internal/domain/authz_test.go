package domain

import (
	"errors"
	"testing"
)

func TestCanCreateJob(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		wantErr   error
	}{
		{"employer can create", Principal{UserID: 1, Role: RoleEmployer}, nil},
		{"admin can create", Principal{UserID: 2, Role: RoleAdmin}, nil},
		{"job seeker cannot create", Principal{UserID: 3, Role: RoleJobSeeker}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCreateJob(tt.principal)
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Fatalf("CanCreateJob() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanManageJob(t *testing.T) {
	job := &Job{ID: 10, EmployerID: 5}

	tests := []struct {
		name      string
		principal Principal
		wantErr   error
	}{
		{"owner can manage", Principal{UserID: 5, Role: RoleEmployer}, nil},
		{"admin can manage", Principal{UserID: 99, Role: RoleAdmin}, nil},
		{"other employer cannot manage", Principal{UserID: 6, Role: RoleEmployer}, ErrForbidden},
		{"job seeker cannot manage", Principal{UserID: 7, Role: RoleJobSeeker}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanManageJob(tt.principal, job)
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Fatalf("CanManageJob() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanApply(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		wantErr   error
	}{
		{"job seeker can apply", Principal{UserID: 1, Role: RoleJobSeeker}, nil},
		{"employer cannot apply", Principal{UserID: 2, Role: RoleEmployer}, ErrForbidden},
		{"admin cannot apply", Principal{UserID: 3, Role: RoleAdmin}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanApply(tt.principal)
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Fatalf("CanApply() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanReviewApplications(t *testing.T) {
	job := &Job{ID: 10, EmployerID: 5}

	tests := []struct {
		name      string
		principal Principal
		wantErr   error
	}{
		{"owner can review", Principal{UserID: 5, Role: RoleEmployer}, nil},
		{"admin can review", Principal{UserID: 99, Role: RoleAdmin}, nil},
		{"other employer cannot review", Principal{UserID: 6, Role: RoleEmployer}, ErrForbidden},
		{"applicant cannot review", Principal{UserID: 7, Role: RoleJobSeeker}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanReviewApplications(tt.principal, job)
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Fatalf("CanReviewApplications() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
