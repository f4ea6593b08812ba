package service

import (
	"fmt"
	"strings"

	"jobport/internal/domain"
	"jobport/pkg/logger"
)

type UserService struct {
	repo   domain.UserRepository
	audit  domain.AuditRecorder
	logger logger.Logger
}

func NewUserService(repo domain.UserRepository, audit domain.AuditRecorder, logger logger.Logger) domain.UserService {
	return &UserService{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

func (s *UserService) GetUserByID(id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("Kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) GetEmployerByID(id int64) (*domain.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if user.Role != domain.RoleEmployer {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) GetJobSeekerByID(id int64) (*domain.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if user.Role != domain.RoleJobSeeker {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) UpdateProfile(principal domain.Principal, input *domain.UpdateProfileInput) (*domain.User, error) {
	user, err := s.GetUserByID(principal.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domain.NewValidationError("name", "isim boş olamaz")
		}
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Position != nil {
		user.Position = strings.TrimSpace(*input.Position)
	}
	if input.Skills != nil {
		user.Skills = *input.Skills
	}
	if input.Experience != nil {
		if *input.Experience < 0 {
			return nil, domain.NewValidationError("experience", "deneyim yılı negatif olamaz")
		}
		user.Experience = *input.Experience
	}
	if input.Bio != nil {
		user.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.Location != nil {
		user.Location = strings.TrimSpace(*input.Location)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}

	// Şirket adı yalnızca işveren hesaplarında güncellenebilir ve boş bırakılamaz.
	if input.Company != nil && user.Role == domain.RoleEmployer {
		if strings.TrimSpace(*input.Company) == "" {
			return nil, domain.NewValidationError("company", "işveren hesapları için şirket adı zorunlu")
		}
		user.Company = strings.TrimSpace(*input.Company)
	}

	if err := s.repo.Update(user); err != nil {
		s.logger.Error("Profil güncellenemedi", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return nil, fmt.Errorf("profil güncellenemedi: %w", err)
	}

	s.audit.Record(domain.EntityTypeUser, user.ID, domain.ActionTypeUpdate, fmt.Sprintf("Profil güncellendi: %s", user.Email))

	return user, nil
}
