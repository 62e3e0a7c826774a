package repository

import (
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/models"

	"gorm.io/gorm"
)

// AuditLogRepository is the audit trail data access interface.
type AuditLogRepository interface {
	Create(entry *models.AuditLog) error
	List(filter AuditLogListFilter) ([]models.AuditLog, int64, error)
}

// GormAuditLogRepository is the GORM implementation.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates an audit log repository.
func NewAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Create inserts an audit entry.
func (r *GormAuditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// List returns a page of audit entries plus the total count.
func (r *GormAuditLogRepository) List(filter AuditLogListFilter) ([]models.AuditLog, int64, error) {
	query := r.db.Model(&models.AuditLog{})
	if filter.ActorID != 0 {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if method := strings.TrimSpace(filter.Method); method != "" {
		query = query.Where("method = ?", strings.ToUpper(method))
	}
	if path := strings.TrimSpace(filter.Path); path != "" {
		query = query.Where("path LIKE ?", path+"%")
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var entries []models.AuditLog
	if err := applyPagination(query.Order("id desc"), filter.Page, filter.Limit).Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
