package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"jobport/internal/domain"
	"jobport/pkg/logger"
)

type ApplicationRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewApplicationRepository(db *sql.DB, logger logger.Logger) domain.ApplicationRepository {
	return &ApplicationRepository{
		db:     db,
		logger: logger,
	}
}

const applicationColumns = `a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume_url, a.status, a.notes, a.created_at, a.updated_at`

func scanApplication(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Application, error) {
	var app domain.Application

	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.ApplicantID,
		&app.CoverLetter,
		&app.ResumeURL,
		&app.Status,
		&app.Notes,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (r *ApplicationRepository) FindByID(id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.id = $1`

	app, err := scanApplication(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Başvuru ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("başvuru bulunamadı: %w", err)
	}

	return app, nil
}

func (r *ApplicationRepository) FindByJobAndApplicant(jobID, applicantID int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.job_id = $1 AND a.applicant_id = $2`

	app, err := scanApplication(r.db.QueryRow(query, jobID, applicantID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Başvuru sorgulanamadı", map[string]interface{}{"job_id": jobID, "applicant_id": applicantID, "error": err.Error()})
		return nil, fmt.Errorf("başvuru bulunamadı: %w", err)
	}

	return app, nil
}

// Create inserts the application and increments the owning job's
// counter in the same transaction. The unique index on
// (job_id, applicant_id) is the authority on duplicates; a constraint
// violation surfaces as ErrAlreadyApplied regardless of any pre-check.
func (r *ApplicationRepository) Create(app *domain.Application) error {
	tx, err := r.db.Begin()
	if err != nil {
		r.logger.Error("Transaction başlatılamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("başvuru oluşturulamadı: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now

	if app.Status == "" {
		app.Status = domain.ApplicationPending
	}

	result, err := tx.Exec(
		`INSERT INTO applications (job_id, applicant_id, cover_letter, resume_url, status, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.JobID,
		app.ApplicantID,
		app.CoverLetter,
		app.ResumeURL,
		app.Status,
		app.Notes,
		app.CreatedAt,
		app.UpdatedAt,
	)

	if err != nil {
		if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrAlreadyApplied
		}
		r.logger.Error("Başvuru oluşturulamadı", map[string]interface{}{"job_id": app.JobID, "error": err.Error()})
		return fmt.Errorf("başvuru oluşturulamadı: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("Başvuru ID'si alınamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("başvuru oluşturulamadı: %w", err)
	}
	app.ID = id

	if _, err := tx.Exec(
		`UPDATE jobs SET number_of_applications = number_of_applications + 1 WHERE id = $1`,
		app.JobID,
	); err != nil {
		r.logger.Error("Başvuru sayacı artırılamadı", map[string]interface{}{"job_id": app.JobID, "error": err.Error()})
		return fmt.Errorf("başvuru oluşturulamadı: %w", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Transaction commit edilemedi", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("başvuru oluşturulamadı: %w", err)
	}

	return nil
}

func (r *ApplicationRepository) UpdateStatus(id int64, status domain.ApplicationStatus, notes *string) error {
	var err error
	now := time.Now()

	if notes != nil {
		_, err = r.db.Exec(
			`UPDATE applications SET status = $1, notes = $2, updated_at = $3 WHERE id = $4`,
			status, *notes, now, id,
		)
	} else {
		_, err = r.db.Exec(
			`UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`,
			status, now, id,
		)
	}

	if err != nil {
		r.logger.Error("Başvuru durumu güncellenemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("başvuru güncellenemedi: %w", err)
	}

	return nil
}

func (r *ApplicationRepository) ListByJob(jobID int64) ([]*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, u.name, u.email, u.skills, u.experience, u.location
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(query, jobID)
	if err != nil {
		r.logger.Error("İlana ait başvurular listelenemedi", map[string]interface{}{"job_id": jobID, "error": err.Error()})
		return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
	}
	defer rows.Close()

	var apps []*domain.Application
	for rows.Next() {
		var app domain.Application
		var applicant domain.ApplicantPublic
		var skillsRaw string

		err := rows.Scan(
			&app.ID,
			&app.JobID,
			&app.ApplicantID,
			&app.CoverLetter,
			&app.ResumeURL,
			&app.Status,
			&app.Notes,
			&app.CreatedAt,
			&app.UpdatedAt,
			&applicant.Name,
			&applicant.Email,
			&skillsRaw,
			&applicant.Experience,
			&applicant.Location,
		)
		if err != nil {
			r.logger.Error("Başvuru satırı okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
		}

		skills, err := decodeSkills(skillsRaw)
		if err != nil {
			return nil, err
		}
		applicant.Skills = skills
		applicant.ID = app.ApplicantID
		app.Applicant = &applicant

		apps = append(apps, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
	}

	return apps, nil
}

func (r *ApplicationRepository) ListByApplicant(applicantID int64) ([]*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, j.title, j.company, j.location, j.job_type, j.status
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(query, applicantID)
	if err != nil {
		r.logger.Error("Kullanıcının başvuruları listelenemedi", map[string]interface{}{"applicant_id": applicantID, "error": err.Error()})
		return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
	}
	defer rows.Close()

	var apps []*domain.Application
	for rows.Next() {
		var app domain.Application
		var job domain.JobSummary

		err := rows.Scan(
			&app.ID,
			&app.JobID,
			&app.ApplicantID,
			&app.CoverLetter,
			&app.ResumeURL,
			&app.Status,
			&app.Notes,
			&app.CreatedAt,
			&app.UpdatedAt,
			&job.Title,
			&job.Company,
			&job.Location,
			&job.JobType,
			&job.Status,
		)
		if err != nil {
			r.logger.Error("Başvuru satırı okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
		}

		job.ID = app.JobID
		app.Job = &job

		apps = append(apps, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
	}

	return apps, nil
}

func (r *ApplicationRepository) ListSummariesByJob(jobID int64) ([]*domain.ApplicationSummary, error) {
	query := `
		SELECT a.id, a.status, a.created_at, a.applicant_id, u.name, u.email
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(query, jobID)
	if err != nil {
		r.logger.Error("Başvuru özetleri listelenemedi", map[string]interface{}{"job_id": jobID, "error": err.Error()})
		return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
	}
	defer rows.Close()

	var summaries []*domain.ApplicationSummary
	for rows.Next() {
		var summary domain.ApplicationSummary
		var applicant domain.ApplicantPublic

		err := rows.Scan(
			&summary.ID,
			&summary.Status,
			&summary.CreatedAt,
			&applicant.ID,
			&applicant.Name,
			&applicant.Email,
		)
		if err != nil {
			r.logger.Error("Başvuru özeti okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
		}

		summary.Applicant = &applicant
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
	}

	return summaries, nil
}
