package models

import "time"

// AuditLog is one request/response snapshot written by the audit middleware.
// Writes happen asynchronously relative to the response.
type AuditLog struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	RequestID    string    `gorm:"type:varchar(64);index" json:"request_id"`
	ActorID      uint      `gorm:"index" json:"actor_id"`
	ActorRole    string    `gorm:"type:varchar(20)" json:"actor_role"`
	Method       string    `gorm:"type:varchar(10);not null" json:"method"`
	Path         string    `gorm:"type:varchar(255);index;not null" json:"path"`
	StatusCode   int       `gorm:"index" json:"status_code"`
	ClientIP     string    `gorm:"type:varchar(64)" json:"client_ip"`
	RequestBody  string    `gorm:"type:text" json:"request_body"`
	ResponseBody string    `gorm:"type:text" json:"response_body"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (AuditLog) TableName() string {
	return "audit_logs"
}
