package dto

import (
	"time"

	"hrm/models"

	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"
)

// AuditLogResponse định nghĩa response một dòng audit log.
// TimeSince được render lúc đọc từ timestamp đã lưu, không bao giờ persist.
type AuditLogResponse struct {
	ID         uint            `json:"id"`
	ActorID    uint            `json:"actorId"`
	ActorName  string          `json:"actorName"`
	Action     string          `json:"action"`
	EntityName string          `json:"entityName"`
	EntityKey  string          `json:"entityKey"`
	OldValues  json.RawMessage `json:"oldValues,omitempty"`
	NewValues  json.RawMessage `json:"newValues,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	TimeSince  string          `json:"timeSince"`
}

// ToAuditLogResponse map model sang response, kèm thời gian tương đối
func ToAuditLogResponse(entry models.AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:         entry.ID,
		ActorID:    entry.ActorID,
		ActorName:  entry.ActorName,
		Action:     entry.Action,
		EntityName: entry.EntityName,
		EntityKey:  entry.EntityKey,
		CreatedAt:  entry.CreatedAt,
		TimeSince:  humanize.Time(entry.CreatedAt),
	}
	if entry.OldValues != "" {
		resp.OldValues = json.RawMessage(entry.OldValues)
	}
	if entry.NewValues != "" {
		resp.NewValues = json.RawMessage(entry.NewValues)
	}
	return resp
}
