package store

import (
	"time"

	"github.com/GBronzi/Reporte-de-ventas/internal/models"

	"gorm.io/gorm"
)

// AuditFilter narrows an audit-log listing. Zero values mean "no
// filter"; PageSize is clamped by the caller.
type AuditFilter struct {
	UserID   *uint
	Start    *time.Time
	End      *time.Time
	Query    string
	Page     int
	PageSize int
}

// ListAuditLogs returns one page of the audit trail, newest first,
// along with the total count for the filter.
func (s *Store) ListAuditLogs(f AuditFilter) ([]models.AuditLog, int64, error) {
	base := s.db.Model(&models.AuditLog{})
	if f.UserID != nil {
		base = base.Where("user_id = ?", *f.UserID)
	}
	if f.Start != nil {
		base = base.Where("created_at >= ?", *f.Start)
	}
	if f.End != nil {
		base = base.Where("created_at < ?", *f.End)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		base = base.Where("path LIKE ? OR action LIKE ?", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, wrap("count audit logs", err)
	}

	var logs []models.AuditLog
	err := base.
		Order("created_at DESC, id DESC").
		Limit(f.PageSize).
		Offset((f.Page - 1) * f.PageSize).
		Find(&logs).Error
	if err != nil {
		return nil, 0, wrap("list audit logs", err)
	}
	return logs, total, nil
}
