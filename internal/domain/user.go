package domain

import "time"

type Role string

const (
	RoleJobSeeker Role = "job-seeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Company      string    `json:"company,omitempty"`
	Position     string    `json:"position,omitempty"`
	Skills       []string  `json:"skills,omitempty"`
	Experience   int       `json:"experience"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EmployerPublic struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
}

type ApplicantPublic struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Skills     []string `json:"skills,omitempty"`
	Experience int      `json:"experience"`
	Location   string   `json:"location,omitempty"`
}

func (u *User) PublicEmployer() *EmployerPublic {
	return &EmployerPublic{
		ID:      u.ID,
		Name:    u.Name,
		Company: u.Company,
	}
}

func (u *User) PublicApplicant() *ApplicantPublic {
	return &ApplicantPublic{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Skills:     u.Skills,
		Experience: u.Experience,
		Location:   u.Location,
	}
}

type UpdateProfileInput struct {
	Name       *string   `json:"name"`
	Position   *string   `json:"position"`
	Skills     *[]string `json:"skills"`
	Experience *int      `json:"experience"`
	Bio        *string   `json:"bio"`
	Location   *string   `json:"location"`
	Phone      *string   `json:"phone"`
	Company    *string   `json:"company"`
}

type UserRepository interface {
	FindByID(id int64) (*User, error)
	FindByEmail(email string) (*User, error)
	Create(user *User) error
	Update(user *User) error
}

type UserService interface {
	GetUserByID(id int64) (*User, error)
	GetEmployerByID(id int64) (*User, error)
	GetJobSeekerByID(id int64) (*User, error)
	UpdateProfile(principal Principal, input *UpdateProfileInput) (*User, error)
}
