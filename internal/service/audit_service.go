package service

import (
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"
)

// AuditService records and queries the write-operation audit trail.
type AuditService struct {
	logs repository.AuditLogRepository
}

// NewAuditService creates the audit service.
func NewAuditService(logs repository.AuditLogRepository) *AuditService {
	return &AuditService{logs: logs}
}

// Record persists one audit entry.
func (s *AuditService) Record(entry *models.AuditLog) error {
	if entry == nil {
		return nil
	}
	return s.logs.Create(entry)
}

// List returns a page of audit entries, newest first.
func (s *AuditService) List(filter repository.AuditLogListFilter) ([]models.AuditLog, int64, error) {
	return s.logs.List(filter)
}
