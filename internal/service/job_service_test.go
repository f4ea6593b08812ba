package service

import (
	"errors"
	"testing"

	"jobport/internal/domain"
)

func newJobServiceForTest() (domain.JobService, *fakeJobRepo, *fakeApplicationRepo, *fakeAudit) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo(jobRepo)
	audit := &fakeAudit{}
	svc := NewJobService(jobRepo, appRepo, audit, testLogger())
	return svc, jobRepo, appRepo, audit
}

func validJobInput() *domain.CreateJobInput {
	return &domain.CreateJobInput{
		Title:           "Backend Geliştirici",
		Description:     "Go ile servis geliştirme",
		Location:        "İstanbul",
		JobType:         string(domain.JobTypeFullTime),
		Category:        "Yazılım",
		ExperienceLevel: string(domain.ExperienceMid),
		Skills:          []string{"Go", "SQL"},
	}
}

func TestCreateJobForcesEmployerFromPrincipal(t *testing.T) {
	svc, _, _, audit := newJobServiceForTest()

	principal := domain.Principal{UserID: 42, Role: domain.RoleEmployer, Company: "Acme Yazılım"}

	job, err := svc.CreateJob(principal, validJobInput())
	if err != nil {
		t.Fatalf("CreateJob() hata: %v", err)
	}

	if job.EmployerID != 42 {
		t.Fatalf("job.EmployerID = %d, oturum sahibinin kimliği (42) bekleniyordu", job.EmployerID)
	}
	if job.Company != "Acme Yazılım" {
		t.Fatalf("job.Company = %q, oturum sahibinin şirketi bekleniyordu", job.Company)
	}
	if job.Status != domain.JobStatusOpen {
		t.Fatalf("varsayılan durum %q, %q bekleniyordu", job.Status, domain.JobStatusOpen)
	}
	if len(audit.records) != 1 || audit.records[0].action != domain.ActionTypeCreate {
		t.Fatalf("ilan oluşturma denetim kaydı bekleniyordu, %+v bulundu", audit.records)
	}
}

func TestCreateJobForbiddenForJobSeeker(t *testing.T) {
	svc, jobRepo, _, _ := newJobServiceForTest()

	principal := domain.Principal{UserID: 7, Role: domain.RoleJobSeeker}

	_, err := svc.CreateJob(principal, validJobInput())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("CreateJob() = %v, ErrForbidden bekleniyordu", err)
	}
	if len(jobRepo.jobs) != 0 {
		t.Fatalf("yetkisiz istek sonrası ilan kaydedilmemeli")
	}
}

func TestCreateJobValidationBeforeMutation(t *testing.T) {
	svc, jobRepo, _, _ := newJobServiceForTest()

	principal := domain.Principal{UserID: 42, Role: domain.RoleEmployer, Company: "Acme"}
	input := validJobInput()
	input.JobType = "Freelance"

	_, err := svc.CreateJob(principal, input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("CreateJob() = %v, ErrValidation bekleniyordu", err)
	}
	if len(jobRepo.jobs) != 0 {
		t.Fatalf("doğrulama hatası sonrası ilan kaydedilmemeli")
	}
}

func TestGetJobAttachesApplicationSummaries(t *testing.T) {
	svc, jobRepo, appRepo, _ := newJobServiceForTest()

	jobRepo.Create(&domain.Job{Title: "İlan", EmployerID: 5, Status: domain.JobStatusOpen})
	appRepo.Create(&domain.Application{JobID: 1, ApplicantID: 9, Status: domain.ApplicationPending})

	job, err := svc.GetJob(1)
	if err != nil {
		t.Fatalf("GetJob() hata: %v", err)
	}
	if len(job.Applications) != 1 {
		t.Fatalf("ilan detayı %d başvuru özeti taşıyor, 1 bekleniyordu", len(job.Applications))
	}
}

func TestGetJobNotFound(t *testing.T) {
	svc, _, _, _ := newJobServiceForTest()

	_, err := svc.GetJob(99)
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("GetJob() = %v, ErrJobNotFound bekleniyordu", err)
	}
}

func TestUpdateJobOwnerGating(t *testing.T) {
	newTitle := "Güncellenmiş başlık"

	tests := []struct {
		name      string
		principal domain.Principal
		wantErr   error
	}{
		{"owner can update", domain.Principal{UserID: 5, Role: domain.RoleEmployer}, nil},
		{"admin can update", domain.Principal{UserID: 99, Role: domain.RoleAdmin}, nil},
		{"other employer forbidden", domain.Principal{UserID: 6, Role: domain.RoleEmployer}, domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, jobRepo, _, _ := newJobServiceForTest()
			jobRepo.Create(&domain.Job{Title: "Eski başlık", EmployerID: 5, Status: domain.JobStatusOpen})

			job, err := svc.UpdateJob(tt.principal, 1, &domain.UpdateJobInput{Title: &newTitle})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateJob() = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateJob() hata: %v", err)
			}
			if job.Title != newTitle {
				t.Fatalf("job.Title = %q, %q bekleniyordu", job.Title, newTitle)
			}
		})
	}
}

func TestUpdateJobRevalidatesEnums(t *testing.T) {
	svc, jobRepo, _, _ := newJobServiceForTest()
	jobRepo.Create(&domain.Job{Title: "İlan", EmployerID: 5, Status: domain.JobStatusOpen})

	bad := "Seasonal"
	_, err := svc.UpdateJob(domain.Principal{UserID: 5, Role: domain.RoleEmployer}, 1, &domain.UpdateJobInput{JobType: &bad})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("UpdateJob() = %v, ErrValidation bekleniyordu", err)
	}
}

func TestDeleteJob(t *testing.T) {
	svc, jobRepo, _, audit := newJobServiceForTest()
	jobRepo.Create(&domain.Job{Title: "İlan", EmployerID: 5, Status: domain.JobStatusOpen})

	if err := svc.DeleteJob(domain.Principal{UserID: 6, Role: domain.RoleEmployer}, 1); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("sahibi olmayan işveren için DeleteJob() = %v, ErrForbidden bekleniyordu", err)
	}

	if err := svc.DeleteJob(domain.Principal{UserID: 5, Role: domain.RoleEmployer}, 1); err != nil {
		t.Fatalf("DeleteJob() hata: %v", err)
	}
	if len(jobRepo.jobs) != 0 {
		t.Fatalf("silinen ilan depoda kalmamalı")
	}
	if len(audit.records) != 1 || audit.records[0].action != domain.ActionTypeDelete {
		t.Fatalf("silme denetim kaydı bekleniyordu, %+v bulundu", audit.records)
	}

	if err := svc.DeleteJob(domain.Principal{UserID: 5, Role: domain.RoleEmployer}, 1); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("ikinci silme ErrJobNotFound dönmeli, %v bulundu", err)
	}
}

func TestReconcileApplicationCount(t *testing.T) {
	svc, jobRepo, appRepo, _ := newJobServiceForTest()
	jobRepo.Create(&domain.Job{Title: "İlan", EmployerID: 5, Status: domain.JobStatusOpen})

	appRepo.Create(&domain.Application{JobID: 1, ApplicantID: 8, Status: domain.ApplicationPending})
	appRepo.Create(&domain.Application{JobID: 1, ApplicantID: 9, Status: domain.ApplicationPending})

	// Sayaç elle bozulur, doğrulama gerçek sayıyı geri yazmalı
	jobRepo.jobs[1].NumberOfApplications = 7

	if err := svc.ReconcileApplicationCount(1); err != nil {
		t.Fatalf("ReconcileApplicationCount() hata: %v", err)
	}
	if got := jobRepo.jobs[1].NumberOfApplications; got != 2 {
		t.Fatalf("sayaç %d, 2 bekleniyordu", got)
	}
}
