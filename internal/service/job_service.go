package service

import (
	"fmt"

	"jobport/internal/domain"
	"jobport/pkg/logger"
	"jobport/pkg/metrics"
)

type JobService struct {
	repo   domain.JobRepository
	apps   domain.ApplicationRepository
	audit  domain.AuditRecorder
	logger logger.Logger
}

func NewJobService(
	repo domain.JobRepository,
	apps domain.ApplicationRepository,
	audit domain.AuditRecorder,
	logger logger.Logger,
) domain.JobService {
	return &JobService{
		repo:   repo,
		apps:   apps,
		audit:  audit,
		logger: logger,
	}
}

func (s *JobService) CreateJob(principal domain.Principal, input *domain.CreateJobInput) (*domain.Job, error) {
	if err := domain.CanCreateJob(principal); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// İşveren ve şirket alanları her zaman oturum sahibinden alınır,
	// istek gövdesinden gelen değerler dikkate alınmaz.
	job := &domain.Job{
		Title:               input.Title,
		Description:         input.Description,
		EmployerID:          principal.UserID,
		Company:             principal.Company,
		Location:            input.Location,
		JobType:             domain.JobType(input.JobType),
		Category:            input.Category,
		ExperienceLevel:     domain.ExperienceLevel(input.ExperienceLevel),
		Salary:              input.Salary,
		Skills:              input.Skills,
		ApplicationDeadline: input.ApplicationDeadline,
		Status:              domain.JobStatus(input.Status),
	}

	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}

	if err := s.repo.Create(job); err != nil {
		s.logger.Error("İş ilanı oluşturulamadı", map[string]interface{}{"employer_id": principal.UserID, "error": err.Error()})
		return nil, err
	}

	s.audit.Record(domain.EntityTypeJob, job.ID, domain.ActionTypeCreate, fmt.Sprintf("İş ilanı oluşturuldu: %s", job.Title))
	metrics.RecordJobCreated(string(job.JobType))

	return job, nil
}

func (s *JobService) GetJob(id int64) (*domain.Job, error) {
	job, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("İş ilanı sorgulanamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("iş ilanı bulunamadı: %w", err)
	}

	if job == nil {
		return nil, domain.ErrJobNotFound
	}

	summaries, err := s.apps.ListSummariesByJob(id)
	if err != nil {
		s.logger.Error("İlana ait başvuru özetleri alınamadı", map[string]interface{}{"job_id": id, "error": err.Error()})
		return nil, fmt.Errorf("iş ilanı bulunamadı: %w", err)
	}
	job.Applications = summaries

	return job, nil
}

func (s *JobService) ListJobs(filter *domain.JobFilter) ([]*domain.Job, int64, error) {
	return s.repo.List(filter)
}

func (s *JobService) UpdateJob(principal domain.Principal, id int64, input *domain.UpdateJobInput) (*domain.Job, error) {
	job, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("İş ilanı sorgulanamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("iş ilanı güncellenemedi: %w", err)
	}

	if job == nil {
		return nil, domain.ErrJobNotFound
	}

	if err := domain.CanManageJob(principal, job); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.JobType != nil {
		job.JobType = domain.JobType(*input.JobType)
	}
	if input.Category != nil {
		job.Category = *input.Category
	}
	if input.ExperienceLevel != nil {
		job.ExperienceLevel = domain.ExperienceLevel(*input.ExperienceLevel)
	}
	if input.Salary != nil {
		job.Salary = *input.Salary
	}
	if input.Skills != nil {
		job.Skills = *input.Skills
	}
	if input.ApplicationDeadline != nil {
		job.ApplicationDeadline = input.ApplicationDeadline
	}
	if input.Status != nil {
		job.Status = domain.JobStatus(*input.Status)
	}

	if err := s.repo.Update(job); err != nil {
		s.logger.Error("İş ilanı güncellenemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, err
	}

	s.audit.Record(domain.EntityTypeJob, job.ID, domain.ActionTypeUpdate, fmt.Sprintf("İş ilanı güncellendi: %s", job.Title))

	return job, nil
}

func (s *JobService) DeleteJob(principal domain.Principal, id int64) error {
	job, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("İş ilanı sorgulanamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("iş ilanı silinemedi: %w", err)
	}

	if job == nil {
		return domain.ErrJobNotFound
	}

	if err := domain.CanManageJob(principal, job); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("İş ilanı silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return err
	}

	s.audit.Record(domain.EntityTypeJob, id, domain.ActionTypeDelete, fmt.Sprintf("İş ilanı silindi: %s", job.Title))

	return nil
}

// ReconcileApplicationCount recounts the job's applications and writes
// the result over the denormalized counter.
func (s *JobService) ReconcileApplicationCount(jobID int64) error {
	count, err := s.repo.CountApplications(jobID)
	if err != nil {
		return fmt.Errorf("başvuru sayacı doğrulanamadı: %w", err)
	}

	if err := s.repo.SetApplicationCount(jobID, count); err != nil {
		return fmt.Errorf("başvuru sayacı doğrulanamadı: %w", err)
	}

	s.logger.Info("Başvuru sayacı doğrulandı", map[string]interface{}{"job_id": jobID, "count": count})
	return nil
}
