package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"jobport/internal/domain"
	"jobport/pkg/logger"
)

type UserRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewUserRepository(db *sql.DB, logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

const userColumns = `id, name, email, password_hash, role, company, position, skills, experience, bio, location, phone, created_at, updated_at`

func scanUser(row interface {
	Scan(dest ...interface{}) error
}) (*domain.User, error) {
	var user domain.User
	var skillsRaw string

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Company,
		&user.Position,
		&skillsRaw,
		&user.Experience,
		&user.Bio,
		&user.Location,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	skills, err := decodeSkills(skillsRaw)
	if err != nil {
		return nil, err
	}
	user.Skills = skills

	return &user, nil
}

func (r *UserRepository) FindByID(id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 COLLATE NOCASE`

	user, err := scanUser(r.db.QueryRow(query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı e-posta adresine göre bulunamadı", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(user *domain.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role, company, position, skills, experience, bio, location, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if user.Role == "" {
		user.Role = domain.RoleJobSeeker
	}

	skillsRaw, err := encodeSkills(user.Skills)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(
		query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Company,
		user.Position,
		skillsRaw,
		user.Experience,
		user.Bio,
		user.Location,
		user.Phone,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrEmailTaken
		}
		r.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("Kullanıcı ID'si alınamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}
	user.ID = id

	return nil
}

func (r *UserRepository) Update(user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, role = $4, company = $5, position = $6,
		    skills = $7, experience = $8, bio = $9, location = $10, phone = $11, updated_at = $12
		WHERE id = $13
	`

	user.UpdatedAt = time.Now()

	skillsRaw, err := encodeSkills(user.Skills)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Company,
		user.Position,
		skillsRaw,
		user.Experience,
		user.Bio,
		user.Location,
		user.Phone,
		user.UpdatedAt,
		user.ID,
	)

	if err != nil {
		r.logger.Error("Kullanıcı güncellenemedi", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	return nil
}
