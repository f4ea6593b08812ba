package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "Pending"
	ApplicationReviewed    ApplicationStatus = "Reviewed"
	ApplicationShortlisted ApplicationStatus = "Shortlisted"
	ApplicationRejected    ApplicationStatus = "Rejected"
	ApplicationHired       ApplicationStatus = "Hired"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationShortlisted, ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

type Application struct {
	ID          int64             `json:"id"`
	JobID       int64             `json:"job_id"`
	ApplicantID int64             `json:"applicant_id"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	ResumeURL   string            `json:"resume_url,omitempty"`
	Status      ApplicationStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	Applicant *ApplicantPublic `json:"applicant,omitempty"`
	Job       *JobSummary      `json:"job,omitempty"`
}

type ApplicationSummary struct {
	ID        int64             `json:"id"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Applicant *ApplicantPublic  `json:"applicant,omitempty"`
}

type ApplyInput struct {
	JobID       int64  `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url"`
}

func (in *ApplyInput) Validate() error {
	if in.JobID <= 0 {
		return NewValidationError("job_id", "başvurulacak ilan belirtilmeli")
	}
	return nil
}

type UpdateApplicationStatusInput struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func (in *UpdateApplicationStatusInput) Validate() error {
	if !ApplicationStatus(in.Status).Valid() {
		return NewValidationError("status", "geçersiz başvuru durumu")
	}
	return nil
}

type ApplicationRepository interface {
	FindByID(id int64) (*Application, error)
	FindByJobAndApplicant(jobID, applicantID int64) (*Application, error)
	// Create inserts the application and increments the owning job's
	// application counter in a single transaction.
	Create(application *Application) error
	UpdateStatus(id int64, status ApplicationStatus, notes *string) error
	ListByJob(jobID int64) ([]*Application, error)
	ListByApplicant(applicantID int64) ([]*Application, error)
	ListSummariesByJob(jobID int64) ([]*ApplicationSummary, error)
}

type ApplicationService interface {
	Apply(principal Principal, input *ApplyInput) (*Application, error)
	ListForJob(principal Principal, jobID int64) ([]*Application, error)
	ListMine(principal Principal) ([]*Application, error)
	UpdateStatus(principal Principal, id int64, input *UpdateApplicationStatusInput) (*Application, error)
}
