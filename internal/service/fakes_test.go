package service

import (
	"io"
	"strings"

	"jobport/internal/domain"
	"jobport/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(logger.ErrorLevel, io.Discard)
}

type auditRecord struct {
	entityType domain.EntityType
	entityID   int64
	action     domain.ActionType
	details    string
}

type fakeAudit struct {
	records []auditRecord
}

func (f *fakeAudit) Record(entityType domain.EntityType, entityID int64, action domain.ActionType, details string) {
	f.records = append(f.records, auditRecord{entityType, entityID, action, details})
}

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) FindByID(id int64) (*domain.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, user := range f.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(user *domain.User) error {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

type fakeJobRepo struct {
	jobs   map[int64]*domain.Job
	apps   *fakeApplicationRepo
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[int64]*domain.Job)}
}

func (f *fakeJobRepo) FindByID(id int64) (*domain.Job, error) {
	return f.jobs[id], nil
}

func (f *fakeJobRepo) List(filter *domain.JobFilter) ([]*domain.Job, int64, error) {
	jobs := make([]*domain.Job, 0, len(f.jobs))
	for _, job := range f.jobs {
		jobs = append(jobs, job)
	}
	return jobs, int64(len(jobs)), nil
}

func (f *fakeJobRepo) Create(job *domain.Job) error {
	f.nextID++
	job.ID = f.nextID
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) Update(job *domain.Job) error {
	if _, ok := f.jobs[job.ID]; !ok {
		return domain.ErrJobNotFound
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) Delete(id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) CountApplications(jobID int64) (int64, error) {
	if f.apps == nil {
		return 0, nil
	}
	var count int64
	for _, app := range f.apps.apps {
		if app.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func (f *fakeJobRepo) SetApplicationCount(jobID, count int64) error {
	f.jobs[jobID].NumberOfApplications = count
	return nil
}

func (f *fakeJobRepo) ReconcileApplicationCounts() (int64, error) {
	var corrected int64
	for id, job := range f.jobs {
		count, _ := f.CountApplications(id)
		if job.NumberOfApplications != count {
			job.NumberOfApplications = count
			corrected++
		}
	}
	return corrected, nil
}

type fakeApplicationRepo struct {
	apps   map[int64]*domain.Application
	jobs   *fakeJobRepo
	nextID int64
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{apps: make(map[int64]*domain.Application), jobs: jobs}
	jobs.apps = repo
	return repo
}

func (f *fakeApplicationRepo) FindByID(id int64) (*domain.Application, error) {
	return f.apps[id], nil
}

func (f *fakeApplicationRepo) FindByJobAndApplicant(jobID, applicantID int64) (*domain.Application, error) {
	for _, app := range f.apps {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			return app, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationRepo) Create(application *domain.Application) error {
	existing, _ := f.FindByJobAndApplicant(application.JobID, application.ApplicantID)
	if existing != nil {
		return domain.ErrAlreadyApplied
	}
	f.nextID++
	application.ID = f.nextID
	f.apps[application.ID] = application
	if job, ok := f.jobs.jobs[application.JobID]; ok {
		job.NumberOfApplications++
	}
	return nil
}

func (f *fakeApplicationRepo) UpdateStatus(id int64, status domain.ApplicationStatus, notes *string) error {
	app, ok := f.apps[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	app.Status = status
	if notes != nil {
		app.Notes = *notes
	}
	return nil
}

func (f *fakeApplicationRepo) ListByJob(jobID int64) ([]*domain.Application, error) {
	var apps []*domain.Application
	for _, app := range f.apps {
		if app.JobID == jobID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (f *fakeApplicationRepo) ListByApplicant(applicantID int64) ([]*domain.Application, error) {
	var apps []*domain.Application
	for _, app := range f.apps {
		if app.ApplicantID == applicantID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (f *fakeApplicationRepo) ListSummariesByJob(jobID int64) ([]*domain.ApplicationSummary, error) {
	var summaries []*domain.ApplicationSummary
	for _, app := range f.apps {
		if app.JobID == jobID {
			summaries = append(summaries, &domain.ApplicationSummary{
				ID:        app.ID,
				Status:    app.Status,
				CreatedAt: app.CreatedAt,
			})
		}
	}
	return summaries, nil
}
