package controllers

import (
	"time"

	"hrm/dto"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services"

	"github.com/gin-gonic/gin"
)

// LeaveController xử lý đơn nghỉ phép
type LeaveController struct {
	Service *services.LeaveService
}

func NewLeaveController(service *services.LeaveService) *LeaveController {
	return &LeaveController{Service: service}
}

func toLeaveResponse(request *models.LeaveRequest) dto.LeaveResponse {
	return dto.LeaveResponse{
		ID:         request.ID,
		EmployeeID: request.EmployeeID,
		FromDate:   request.FromDate.Format("02/01/2006"),
		ToDate:     request.ToDate.Format("02/01/2006"),
		Reason:     request.Reason,
		Status:     request.Status,
		ApprovedBy: request.ApprovedBy,
		CreatedAt:  request.CreatedAt,
	}
}

// RequestLeave tạo đơn nghỉ phép mới, ngày dạng dd/mm/yyyy
func (ctrl *LeaveController) RequestLeave(c *gin.Context) {
	var input dto.LeaveRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	fromDate, err := time.Parse("02/01/2006", input.FromDate)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày bắt đầu không hợp lệ")
		return
	}
	toDate, err := time.Parse("02/01/2006", input.ToDate)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày kết thúc không hợp lệ")
		return
	}

	actorID := middleware.ActorID(c)
	request, err := ctrl.Service.RequestLeave(c.Request.Context(), actorID, input.EmployeeID, fromDate, toDate, input.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toLeaveResponse(request))
}

// ApproveLeave duyệt đơn nghỉ phép
func (ctrl *LeaveController) ApproveLeave(c *gin.Context) {
	id := parsePositiveInt(c.Param("id"), 0)
	if id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	actorID := middleware.ActorID(c)
	request, err := ctrl.Service.ApproveLeave(c.Request.Context(), actorID, uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toLeaveResponse(request))
}

// RejectLeave từ chối đơn nghỉ phép
func (ctrl *LeaveController) RejectLeave(c *gin.Context) {
	id := parsePositiveInt(c.Param("id"), 0)
	if id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	actorID := middleware.ActorID(c)
	request, err := ctrl.Service.RejectLeave(c.Request.Context(), actorID, uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toLeaveResponse(request))
}

// GetLeaveHistory lấy các đơn nghỉ phép của một nhân viên
func (ctrl *LeaveController) GetLeaveHistory(c *gin.Context) {
	employeeID := parsePositiveInt(c.Query("employeeId"), 0)
	if employeeID == 0 {
		response.BadRequest(c, "Thiếu employeeId")
		return
	}

	requests, err := ctrl.Service.ListByEmployee(c.Request.Context(), uint(employeeID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]dto.LeaveResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, toLeaveResponse(&requests[i]))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}
