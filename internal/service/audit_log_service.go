package service

import (
	"fmt"
	"time"

	"jobport/internal/domain"
	"jobport/pkg/logger"
)

type AuditLogService struct {
	repo   domain.AuditLogRepository
	logger logger.Logger
}

func NewAuditLogService(repo domain.AuditLogRepository, logger logger.Logger) domain.AuditLogService {
	return &AuditLogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *AuditLogService) LogAction(entityType domain.EntityType, entityID int64, action domain.ActionType, details string) error {
	log := &domain.AuditLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(log); err != nil {
		s.logger.Error("Denetim kaydı oluşturulamadı", map[string]interface{}{"entity_type": entityType, "entity_id": entityID, "error": err.Error()})
		return fmt.Errorf("denetim kaydı oluşturulamadı: %w", err)
	}

	return nil
}

func (s *AuditLogService) GetEntityLogs(entityType domain.EntityType, entityID int64) ([]*domain.AuditLog, error) {
	logs, err := s.repo.FindByEntityID(entityType, entityID)
	if err != nil {
		s.logger.Error("Denetim kayıtları alınamadı", map[string]interface{}{"entity_type": entityType, "entity_id": entityID, "error": err.Error()})
		return nil, fmt.Errorf("denetim kayıtları alınamadı: %w", err)
	}

	return logs, nil
}

func (s *AuditLogService) GetAllLogs(page, pageSize int) ([]*domain.AuditLog, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	logs, err := s.repo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		s.logger.Error("Denetim kayıtları alınamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("denetim kayıtları alınamadı: %w", err)
	}

	return logs, nil
}
