package service

import (
	"fmt"

	"jobport/internal/domain"
	"jobport/pkg/logger"
	"jobport/pkg/metrics"
)

type ApplicationService struct {
	repo   domain.ApplicationRepository
	jobs   domain.JobRepository
	audit  domain.AuditRecorder
	logger logger.Logger
}

func NewApplicationService(
	repo domain.ApplicationRepository,
	jobs domain.JobRepository,
	audit domain.AuditRecorder,
	logger logger.Logger,
) domain.ApplicationService {
	return &ApplicationService{
		repo:   repo,
		jobs:   jobs,
		audit:  audit,
		logger: logger,
	}
}

func (s *ApplicationService) Apply(principal domain.Principal, input *domain.ApplyInput) (*domain.Application, error) {
	if err := domain.CanApply(principal); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(input.JobID)
	if err != nil {
		s.logger.Error("Başvurulan ilan sorgulanamadı", map[string]interface{}{"job_id": input.JobID, "error": err.Error()})
		return nil, fmt.Errorf("başvuru oluşturulamadı: %w", err)
	}

	if job == nil {
		return nil, domain.ErrJobNotFound
	}

	existing, err := s.repo.FindByJobAndApplicant(input.JobID, principal.UserID)
	if err != nil {
		s.logger.Error("Mevcut başvuru kontrolü sırasında hata oluştu", map[string]interface{}{"job_id": input.JobID, "error": err.Error()})
		return nil, fmt.Errorf("başvuru oluşturulamadı: %w", err)
	}

	if existing != nil {
		return nil, domain.ErrAlreadyApplied
	}

	// Başvuran her zaman oturum sahibidir.
	application := &domain.Application{
		JobID:       input.JobID,
		ApplicantID: principal.UserID,
		CoverLetter: input.CoverLetter,
		ResumeURL:   input.ResumeURL,
		Status:      domain.ApplicationPending,
	}

	// Ön kontrol yarışabilir; tekillik esas olarak veritabanı
	// indeksiyle sağlanır ve ihlali aynı Conflict sonucuna çevrilir.
	if err := s.repo.Create(application); err != nil {
		if err != domain.ErrAlreadyApplied {
			s.logger.Error("Başvuru oluşturulamadı", map[string]interface{}{"job_id": input.JobID, "applicant_id": principal.UserID, "error": err.Error()})
		}
		return nil, err
	}

	s.audit.Record(domain.EntityTypeApplication, application.ID, domain.ActionTypeCreate,
		fmt.Sprintf("Başvuru alındı: ilan %d, başvuran %d", application.JobID, application.ApplicantID))
	metrics.RecordApplicationSubmitted()

	return application, nil
}

func (s *ApplicationService) ListForJob(principal domain.Principal, jobID int64) ([]*domain.Application, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		s.logger.Error("İlan sorgulanamadı", map[string]interface{}{"job_id": jobID, "error": err.Error()})
		return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
	}

	if job == nil {
		return nil, domain.ErrJobNotFound
	}

	if err := domain.CanReviewApplications(principal, job); err != nil {
		return nil, err
	}

	return s.repo.ListByJob(jobID)
}

func (s *ApplicationService) ListMine(principal domain.Principal) ([]*domain.Application, error) {
	// Filtre her zaman oturum sahibiyle sınırlıdır.
	return s.repo.ListByApplicant(principal.UserID)
}

func (s *ApplicationService) UpdateStatus(principal domain.Principal, id int64, input *domain.UpdateApplicationStatusInput) (*domain.Application, error) {
	application, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("Başvuru sorgulanamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("başvuru güncellenemedi: %w", err)
	}

	if application == nil {
		return nil, domain.ErrApplicationNotFound
	}

	job, err := s.jobs.FindByID(application.JobID)
	if err != nil {
		s.logger.Error("Başvurunun ilanı sorgulanamadı", map[string]interface{}{"job_id": application.JobID, "error": err.Error()})
		return nil, fmt.Errorf("başvuru güncellenemedi: %w", err)
	}

	if job == nil {
		return nil, domain.ErrJobNotFound
	}

	if err := domain.CanReviewApplications(principal, job); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(id, domain.ApplicationStatus(input.Status), input.Notes); err != nil {
		s.logger.Error("Başvuru durumu güncellenemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, err
	}

	updated, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("başvuru güncellenemedi: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrApplicationNotFound
	}

	s.audit.Record(domain.EntityTypeApplication, id, domain.ActionTypeUpdate,
		fmt.Sprintf("Başvuru durumu güncellendi: %s", input.Status))
	metrics.RecordApplicationStatusChange(input.Status)

	return updated, nil
}
