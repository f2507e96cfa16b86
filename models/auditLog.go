package models

import "time"

// AuditLog là bản ghi bất biến về mọi create/update/delete trong hệ thống.
// Append-only, không bao giờ sửa hay xóa sau khi tạo.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ActorID    uint      `gorm:"index" json:"actorId"`
	ActorName  string    `gorm:"type:varchar(50)" json:"actorName"`
	Action     string    `gorm:"type:varchar(20);not null" json:"action"`
	EntityName string    `gorm:"type:varchar(50);not null;index" json:"entityName"`
	EntityKey  string    `gorm:"type:varchar(50);not null;index" json:"entityKey"`
	OldValues  string    `gorm:"type:jsonb" json:"oldValues,omitempty"`
	NewValues  string    `gorm:"type:jsonb" json:"newValues,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}
