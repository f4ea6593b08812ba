package domain

type Principal struct {
	UserID  int64
	Role    Role
	Name    string
	Company string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanCreateJob allows employers and admins to post jobs. The job's
// employer and company fields are always taken from the principal,
// never from client input.
func CanCreateJob(p Principal) error {
	if p.IsAdmin() {
		return nil
	}
	if p.Role == RoleEmployer {
		return nil
	}
	return ErrForbidden
}

// CanManageJob allows updating or deleting a job only for its owning
// employer or an admin.
func CanManageJob(p Principal, job *Job) error {
	if p.IsAdmin() {
		return nil
	}
	if job.EmployerID == p.UserID {
		return nil
	}
	return ErrForbidden
}

// CanApply allows only job seekers to submit applications. The
// applicant is always the principal.
func CanApply(p Principal) error {
	if p.Role == RoleJobSeeker {
		return nil
	}
	return ErrForbidden
}

// CanReviewApplications allows the job's owning employer or an admin
// to list a job's applications and change their statuses.
func CanReviewApplications(p Principal, job *Job) error {
	if p.IsAdmin() {
		return nil
	}
	if job.EmployerID == p.UserID {
		return nil
	}
	return ErrForbidden
}
