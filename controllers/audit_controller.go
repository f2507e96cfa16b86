package controllers

import (
	"time"

	"hrm/dto"
	"hrm/response"
	"hrm/services/audit"

	"github.com/gin-gonic/gin"
)

// AuditController cho phép đọc audit log; log là append-only,
// không có endpoint sửa hay xóa
type AuditController struct {
	Recorder *audit.Recorder
}

func NewAuditController(recorder *audit.Recorder) *AuditController {
	return &AuditController{Recorder: recorder}
}

// GetAuditLogs lấy audit log theo filter entity/actor/action/khoảng thời gian,
// mới nhất trước
func (ctrl *AuditController) GetAuditLogs(c *gin.Context) {
	filters := audit.ListFilters{
		EntityName: c.Query("entityName"),
		EntityKey:  c.Query("entityKey"),
		Action:     c.Query("action"),
		Page:       parsePositiveInt(c.Query("page"), 1),
		Limit:      parsePositiveInt(c.Query("limit"), 20),
	}

	if actorStr := c.Query("actorId"); actorStr != "" {
		actorID := uint(parsePositiveInt(actorStr, 0))
		if actorID == 0 {
			response.BadRequest(c, "actorId không hợp lệ")
			return
		}
		filters.ActorID = &actorID
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("02/01/2006", fromStr)
		if err != nil {
			response.BadRequest(c, "Định dạng from không hợp lệ, dùng dd/mm/yyyy")
			return
		}
		filters.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("02/01/2006", toStr)
		if err != nil {
			response.BadRequest(c, "Định dạng to không hợp lệ, dùng dd/mm/yyyy")
			return
		}
		// lấy trọn ngày to
		endOfDay := to.AddDate(0, 0, 1).Add(-time.Second)
		filters.To = &endOfDay
	}

	entries, total, err := ctrl.Recorder.List(c.Request.Context(), filters)
	if err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.AuditLogResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.ToAuditLogResponse(entry))
	}

	response.SuccessWithPagination(c, responses, filters.Page, filters.Limit, int(total))
}
