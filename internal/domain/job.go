package domain

import (
	"strings"
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeRemote     JobType = "Remote"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "Entry-level"
	ExperienceMid       ExperienceLevel = "Mid-level"
	ExperienceSenior    ExperienceLevel = "Senior"
	ExperienceExecutive ExperienceLevel = "Executive"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
	JobStatusDraft  JobStatus = "Draft"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

const MaxJobTitleLength = 100

type Job struct {
	ID                   int64           `json:"id"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	EmployerID           int64           `json:"employer_id"`
	Company              string          `json:"company"`
	Location             string          `json:"location"`
	JobType              JobType         `json:"job_type"`
	Category             string          `json:"category"`
	ExperienceLevel      ExperienceLevel `json:"experience_level"`
	Salary               string          `json:"salary,omitempty"`
	Skills               []string        `json:"skills"`
	ApplicationDeadline  *time.Time      `json:"application_deadline,omitempty"`
	Status               JobStatus       `json:"status"`
	NumberOfApplications int64           `json:"number_of_applications"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`

	Employer     *EmployerPublic       `json:"employer,omitempty"`
	Applications []*ApplicationSummary `json:"applications,omitempty"`
}

type JobSummary struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	Location string    `json:"location"`
	JobType  JobType   `json:"job_type"`
	Status   JobStatus `json:"status"`
}

func (j *Job) Summary() *JobSummary {
	return &JobSummary{
		ID:       j.ID,
		Title:    j.Title,
		Company:  j.Company,
		Location: j.Location,
		JobType:  j.JobType,
		Status:   j.Status,
	}
}

type CreateJobInput struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	JobType             string     `json:"job_type"`
	Category            string     `json:"category"`
	ExperienceLevel     string     `json:"experience_level"`
	Salary              string     `json:"salary"`
	Skills              []string   `json:"skills"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Status              string     `json:"status"`
}

func (in *CreateJobInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title", "iş ilanı başlığı zorunlu")
	}
	if len(in.Title) > MaxJobTitleLength {
		return NewValidationError("title", "iş ilanı başlığı 100 karakteri aşamaz")
	}
	if strings.TrimSpace(in.Description) == "" {
		return NewValidationError("description", "iş tanımı zorunlu")
	}
	if strings.TrimSpace(in.Location) == "" {
		return NewValidationError("location", "konum zorunlu")
	}
	if !JobType(in.JobType).Valid() {
		return NewValidationError("job_type", "geçersiz çalışma türü")
	}
	if strings.TrimSpace(in.Category) == "" {
		return NewValidationError("category", "kategori zorunlu")
	}
	if !ExperienceLevel(in.ExperienceLevel).Valid() {
		return NewValidationError("experience_level", "geçersiz deneyim seviyesi")
	}
	if len(in.Skills) == 0 {
		return NewValidationError("skills", "en az bir yetenek belirtilmeli")
	}
	if in.Status != "" && !JobStatus(in.Status).Valid() {
		return NewValidationError("status", "geçersiz ilan durumu")
	}
	return nil
}

type UpdateJobInput struct {
	Title               *string    `json:"title"`
	Description         *string    `json:"description"`
	Location            *string    `json:"location"`
	JobType             *string    `json:"job_type"`
	Category            *string    `json:"category"`
	ExperienceLevel     *string    `json:"experience_level"`
	Salary              *string    `json:"salary"`
	Skills              *[]string  `json:"skills"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Status              *string    `json:"status"`
}

func (in *UpdateJobInput) Validate() error {
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return NewValidationError("title", "iş ilanı başlığı boş olamaz")
		}
		if len(*in.Title) > MaxJobTitleLength {
			return NewValidationError("title", "iş ilanı başlığı 100 karakteri aşamaz")
		}
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		return NewValidationError("description", "iş tanımı boş olamaz")
	}
	if in.Location != nil && strings.TrimSpace(*in.Location) == "" {
		return NewValidationError("location", "konum boş olamaz")
	}
	if in.JobType != nil && !JobType(*in.JobType).Valid() {
		return NewValidationError("job_type", "geçersiz çalışma türü")
	}
	if in.ExperienceLevel != nil && !ExperienceLevel(*in.ExperienceLevel).Valid() {
		return NewValidationError("experience_level", "geçersiz deneyim seviyesi")
	}
	if in.Skills != nil && len(*in.Skills) == 0 {
		return NewValidationError("skills", "en az bir yetenek belirtilmeli")
	}
	if in.Status != nil && !JobStatus(*in.Status).Valid() {
		return NewValidationError("status", "geçersiz ilan durumu")
	}
	return nil
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type JobFilter struct {
	Status   string
	JobType  string
	Category string
	Location string
	Skills   []string
	Search   string
	Page     int
	PageSize int
}

func (f *JobFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
}

type JobRepository interface {
	FindByID(id int64) (*Job, error)
	List(filter *JobFilter) ([]*Job, int64, error)
	Create(job *Job) error
	Update(job *Job) error
	Delete(id int64) error
	CountApplications(jobID int64) (int64, error)
	SetApplicationCount(jobID, count int64) error
	ReconcileApplicationCounts() (int64, error)
}

type JobService interface {
	CreateJob(principal Principal, input *CreateJobInput) (*Job, error)
	GetJob(id int64) (*Job, error)
	ListJobs(filter *JobFilter) ([]*Job, int64, error)
	UpdateJob(principal Principal, id int64, input *UpdateJobInput) (*Job, error)
	DeleteJob(principal Principal, id int64) error
	ReconcileApplicationCount(jobID int64) error
}
