package service

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobport/internal/domain"
	"jobport/pkg/logger"
	"jobport/pkg/token"
)

type AuthService struct {
	repo       domain.UserRepository
	tokens     *token.Manager
	bcryptCost int
	audit      domain.AuditRecorder
	logger     logger.Logger
}

func NewAuthService(
	repo domain.UserRepository,
	tokens *token.Manager,
	bcryptCost int,
	audit domain.AuditRecorder,
	logger logger.Logger,
) domain.AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		audit:      audit,
		logger:     logger,
	}
}

func (s *AuthService) Register(input *domain.RegisterInput) (*domain.User, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	existingUser, err := s.repo.FindByEmail(email)
	if err != nil {
		s.logger.Error("E-posta adresi kontrolü sırasında hata oluştu", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, "", fmt.Errorf("kayıt tamamlanamadı: %w", err)
	}

	if existingUser != nil {
		return nil, "", domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Şifre özetlenemedi", map[string]interface{}{"error": err.Error()})
		return nil, "", fmt.Errorf("kayıt tamamlanamadı: %w", err)
	}

	role := domain.Role(input.Role)
	if role == "" {
		role = domain.RoleJobSeeker
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Company:      strings.TrimSpace(input.Company),
	}

	if err := s.repo.Create(user); err != nil {
		s.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, "", err
	}

	signed, err := s.tokens.Sign(user.ID)
	if err != nil {
		s.logger.Error("Oturum anahtarı oluşturulamadı", map[string]interface{}{"user_id": user.ID, "error": err.Error()})
		return nil, "", fmt.Errorf("kayıt tamamlanamadı: %w", err)
	}

	s.audit.Record(domain.EntityTypeUser, user.ID, domain.ActionTypeCreate, fmt.Sprintf("Kullanıcı kaydedildi: %s", user.Email))

	return user, signed, nil
}

func (s *AuthService) Login(input *domain.LoginInput) (*domain.User, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		s.logger.Error("Giriş sırasında kullanıcı sorgulanamadı", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, "", fmt.Errorf("giriş yapılamadı: %w", err)
	}

	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Sign(user.ID)
	if err != nil {
		s.logger.Error("Oturum anahtarı oluşturulamadı", map[string]interface{}{"user_id": user.ID, "error": err.Error()})
		return nil, "", fmt.Errorf("giriş yapılamadı: %w", err)
	}

	return user, signed, nil
}

func (s *AuthService) ResolveToken(tokenString string) (domain.Principal, error) {
	userID, err := s.tokens.Verify(tokenString)
	if err != nil {
		return domain.Principal{}, err
	}

	user, err := s.repo.FindByID(userID)
	if err != nil {
		s.logger.Error("Oturum sahibi sorgulanamadı", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return domain.Principal{}, fmt.Errorf("kimlik doğrulanamadı: %w", err)
	}

	if user == nil {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{
		UserID:  user.ID,
		Role:    user.Role,
		Name:    user.Name,
		Company: user.Company,
	}, nil
}
