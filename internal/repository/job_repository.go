package repository

import (
	"database/sql"
	"fmt"
	"time"

	"jobport/internal/domain"
	"jobport/pkg/logger"
)

type JobRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewJobRepository(db *sql.DB, logger logger.Logger) domain.JobRepository {
	return &JobRepository{
		db:     db,
		logger: logger,
	}
}

const jobColumns = `j.id, j.title, j.description, j.employer_id, j.company, j.location, j.job_type, j.category,
	j.experience_level, j.salary, j.skills, j.application_deadline, j.status, j.number_of_applications,
	j.created_at, j.updated_at, u.name, u.company`

func scanJob(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Job, error) {
	var job domain.Job
	var skillsRaw string
	var deadline sql.NullTime
	var employerName, employerCompany string

	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.EmployerID,
		&job.Company,
		&job.Location,
		&job.JobType,
		&job.Category,
		&job.ExperienceLevel,
		&job.Salary,
		&skillsRaw,
		&deadline,
		&job.Status,
		&job.NumberOfApplications,
		&job.CreatedAt,
		&job.UpdatedAt,
		&employerName,
		&employerCompany,
	)
	if err != nil {
		return nil, err
	}

	skills, err := decodeSkills(skillsRaw)
	if err != nil {
		return nil, err
	}
	job.Skills = skills

	if deadline.Valid {
		job.ApplicationDeadline = &deadline.Time
	}

	job.Employer = &domain.EmployerPublic{
		ID:      job.EmployerID,
		Name:    employerName,
		Company: employerCompany,
	}

	return &job, nil
}

func (r *JobRepository) FindByID(id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j JOIN users u ON u.id = j.employer_id WHERE j.id = $1`

	job, err := scanJob(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("İş ilanı ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("iş ilanı bulunamadı: %w", err)
	}

	return job, nil
}

func (r *JobRepository) List(filter *domain.JobFilter) ([]*domain.Job, int64, error) {
	filter.Normalize()

	where, args := buildJobFilter(filter)

	countQuery := `SELECT COUNT(*) FROM jobs j ` + where

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("İş ilanları sayılamadı", map[string]interface{}{"error": err.Error()})
		return nil, 0, fmt.Errorf("iş ilanları listelenemedi: %w", err)
	}

	pagination, listArgs := appendPagination(args, filter)

	listQuery := fmt.Sprintf(
		`SELECT %s FROM jobs j JOIN users u ON u.id = j.employer_id %s ORDER BY j.created_at DESC %s`,
		jobColumns, where, pagination,
	)

	rows, err := r.db.Query(listQuery, listArgs...)
	if err != nil {
		r.logger.Error("İş ilanları listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, 0, fmt.Errorf("iş ilanları listelenemedi: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			r.logger.Error("İş ilanı satırı okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, 0, fmt.Errorf("iş ilanları listelenemedi: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iş ilanları listelenemedi: %w", err)
	}

	return jobs, total, nil
}

func (r *JobRepository) Create(job *domain.Job) error {
	query := `
		INSERT INTO jobs (title, description, employer_id, company, location, job_type, category,
			experience_level, salary, skills, application_deadline, status, number_of_applications,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	job.NumberOfApplications = 0

	skillsRaw, err := encodeSkills(job.Skills)
	if err != nil {
		return err
	}

	var deadline interface{}
	if job.ApplicationDeadline != nil {
		deadline = *job.ApplicationDeadline
	}

	result, err := r.db.Exec(
		query,
		job.Title,
		job.Description,
		job.EmployerID,
		job.Company,
		job.Location,
		job.JobType,
		job.Category,
		job.ExperienceLevel,
		job.Salary,
		skillsRaw,
		deadline,
		job.Status,
		job.NumberOfApplications,
		job.CreatedAt,
		job.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("İş ilanı oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("iş ilanı oluşturulamadı: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("İş ilanı ID'si alınamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("iş ilanı oluşturulamadı: %w", err)
	}
	job.ID = id

	return nil
}

func (r *JobRepository) Update(job *domain.Job) error {
	query := `
		UPDATE jobs
		SET title = $1, description = $2, company = $3, location = $4, job_type = $5, category = $6,
		    experience_level = $7, salary = $8, skills = $9, application_deadline = $10, status = $11,
		    updated_at = $12
		WHERE id = $13
	`

	job.UpdatedAt = time.Now()

	skillsRaw, err := encodeSkills(job.Skills)
	if err != nil {
		return err
	}

	var deadline interface{}
	if job.ApplicationDeadline != nil {
		deadline = *job.ApplicationDeadline
	}

	_, err = r.db.Exec(
		query,
		job.Title,
		job.Description,
		job.Company,
		job.Location,
		job.JobType,
		job.Category,
		job.ExperienceLevel,
		job.Salary,
		skillsRaw,
		deadline,
		job.Status,
		job.UpdatedAt,
		job.ID,
	)

	if err != nil {
		r.logger.Error("İş ilanı güncellenemedi", map[string]interface{}{"id": job.ID, "error": err.Error()})
		return fmt.Errorf("iş ilanı güncellenemedi: %w", err)
	}

	return nil
}

// Delete removes the job and its applications in one transaction so no
// orphaned application can reference a missing job.
func (r *JobRepository) Delete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		r.logger.Error("Transaction başlatılamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("iş ilanı silinemedi: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM applications WHERE job_id = $1`, id); err != nil {
		r.logger.Error("İlana ait başvurular silinemedi", map[string]interface{}{"job_id": id, "error": err.Error()})
		return fmt.Errorf("iş ilanı silinemedi: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM jobs WHERE id = $1`, id); err != nil {
		r.logger.Error("İş ilanı silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("iş ilanı silinemedi: %w", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Transaction commit edilemedi", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("iş ilanı silinemedi: %w", err)
	}

	return nil
}

func (r *JobRepository) CountApplications(jobID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&count)
	if err != nil {
		r.logger.Error("Başvurular sayılamadı", map[string]interface{}{"job_id": jobID, "error": err.Error()})
		return 0, fmt.Errorf("başvurular sayılamadı: %w", err)
	}

	return count, nil
}

func (r *JobRepository) SetApplicationCount(jobID, count int64) error {
	_, err := r.db.Exec(`UPDATE jobs SET number_of_applications = $1 WHERE id = $2`, count, jobID)
	if err != nil {
		r.logger.Error("Başvuru sayacı güncellenemedi", map[string]interface{}{"job_id": jobID, "error": err.Error()})
		return fmt.Errorf("başvuru sayacı güncellenemedi: %w", err)
	}

	return nil
}

// ReconcileApplicationCounts sayaçları başvuru tablosundan yeniden
// hesaplar ve yalnızca sapmış satırları günceller. Düzeltilen ilan
// sayısını döner.
func (r *JobRepository) ReconcileApplicationCounts() (int64, error) {
	query := `
		UPDATE jobs
		SET number_of_applications = (
			SELECT COUNT(*) FROM applications a WHERE a.job_id = jobs.id
		)
		WHERE number_of_applications <> (
			SELECT COUNT(*) FROM applications a WHERE a.job_id = jobs.id
		)
	`

	result, err := r.db.Exec(query)
	if err != nil {
		r.logger.Error("Başvuru sayaçları mutabakatı başarısız", map[string]interface{}{"error": err.Error()})
		return 0, fmt.Errorf("başvuru sayaçları mutabakatı başarısız: %w", err)
	}

	corrected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("başvuru sayaçları mutabakatı başarısız: %w", err)
	}

	return corrected, nil
}
