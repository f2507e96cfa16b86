package controllers

import (
	"time"

	"hrm/dto"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services"
	"hrm/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// PayrollController xử lý tính lương, cập nhật và chuyển trạng thái
// thanh toán
type PayrollController struct {
	Service  *services.PayrollService
	Redis    *redis.Client
	Notifier notification.Service
}

func NewPayrollController(service *services.PayrollService, redisCli *redis.Client, notifier notification.Service) *PayrollController {
	return &PayrollController{Service: service, Redis: redisCli, Notifier: notifier}
}

func toPayrollResponse(record *models.PayrollRecord) dto.PayrollResponse {
	resp := dto.PayrollResponse{
		ID:              record.ID,
		EmployeeID:      record.EmployeeID,
		PayrollMonth:    record.PayrollMonth.Format("01/2006"),
		TotalDays:       record.TotalDays,
		PaidDays:        record.PaidDays,
		AdjustedBasic:   record.AdjustedBasic,
		GrossSalary:     record.GrossSalary,
		Bonus:           record.Bonus,
		TotalDeductions: record.TotalDeductions,
		NetPay:          record.NetPay,
		PaymentDate:     record.PaymentDate,
		PaymentStatus:   record.PaymentStatus,
	}
	if record.Employee != nil {
		resp.EmployeeName = record.Employee.Name
	}
	return resp
}

// GeneratePayroll tính lương cho một nhân viên một tháng, tháng dạng mm/yyyy
func (ctrl *PayrollController) GeneratePayroll(c *gin.Context) {
	var request dto.GeneratePayrollRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	month, err := time.Parse("01/2006", request.Month)
	if err != nil {
		response.BadRequest(c, "Định dạng tháng không hợp lệ, dùng mm/yyyy")
		return
	}

	actorID := middleware.ActorID(c)
	record, err := ctrl.Service.GeneratePayroll(c.Request.Context(), actorID, services.GeneratePayrollInput{
		EmployeeID:      request.EmployeeID,
		Month:           month,
		Bonus:           request.Bonus,
		ExtraDeductions: request.ExtraDeductions,
		PaymentDate:     request.PaymentDate,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateHistoryCache(c, record.EmployeeID)
	response.Success(c, toPayrollResponse(record))
}

// UpdatePayroll tính lại bảng lương còn Pending với bonus/khấu trừ mới
func (ctrl *PayrollController) UpdatePayroll(c *gin.Context) {
	var request dto.UpdatePayrollRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	actorID := middleware.ActorID(c)
	record, err := ctrl.Service.UpdatePayroll(c.Request.Context(), actorID, request.PayrollID, request.Bonus, request.ExtraDeductions)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateHistoryCache(c, record.EmployeeID)
	response.Success(c, toPayrollResponse(record))
}

// ChangePayrollStatus chuyển trạng thái Pending -> Processed -> Paid,
// kèm thông báo websocket cho client
func (ctrl *PayrollController) ChangePayrollStatus(c *gin.Context) {
	var request dto.PayrollStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	actorID := middleware.ActorID(c)
	record, err := ctrl.Service.ChangeStatus(c.Request.Context(), actorID, request.PayrollID, request.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if ctrl.Notifier != nil {
		message := notification.NewPayrollMessageBuilder(
			record.EmployeeID,
			record.PayrollMonth.Format("01/2006"),
			record.NetPay,
			record.PaymentStatus,
		).Build()
		_ = ctrl.Notifier.SendMessage(message)
	}

	ctrl.invalidateHistoryCache(c, record.EmployeeID)
	response.Success(c, toPayrollResponse(record))
}

// GetPayrollDetail lấy chi tiết một bảng lương
func (ctrl *PayrollController) GetPayrollDetail(c *gin.Context) {
	id := parsePositiveInt(c.Param("id"), 0)
	if id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	record, err := ctrl.Service.GetPayroll(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toPayrollResponse(record))
}

// GetPayrollsByMonth lấy mọi bảng lương của một tháng mm/yyyy
func (ctrl *PayrollController) GetPayrollsByMonth(c *gin.Context) {
	monthStr := c.Query("month")
	month, err := time.Parse("01/2006", monthStr)
	if err != nil {
		response.BadRequest(c, "Định dạng tháng không hợp lệ, dùng mm/yyyy")
		return
	}

	records, err := ctrl.Service.ListByMonth(c.Request.Context(), month)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]dto.PayrollResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toPayrollResponse(&records[i]))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

// GetSalaryHistory lấy lịch sử lương của một nhân viên, có cache Redis
func (ctrl *PayrollController) GetSalaryHistory(c *gin.Context) {
	employeeID := parsePositiveInt(c.Query("employeeId"), 0)
	if employeeID == 0 {
		response.BadRequest(c, "Thiếu employeeId")
		return
	}

	cacheKey := services.PayrollCacheKey(uint(employeeID))
	if ctrl.Redis != nil {
		var cached []dto.PayrollResponse
		if err := services.GetFromRedis(c.Request.Context(), ctrl.Redis, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithTotal(c, cached, len(cached))
			return
		}
	}

	records, err := ctrl.Service.ListByEmployee(c.Request.Context(), uint(employeeID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]dto.PayrollResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toPayrollResponse(&records[i]))
	}

	if ctrl.Redis != nil && len(responses) > 0 {
		_ = services.SetToRedis(c.Request.Context(), ctrl.Redis, cacheKey, responses, services.PayrollCacheTTL)
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

func (ctrl *PayrollController) invalidateHistoryCache(c *gin.Context, employeeID uint) {
	if ctrl.Redis == nil {
		return
	}
	_ = services.DeleteFromRedis(c.Request.Context(), ctrl.Redis, services.PayrollCacheKey(employeeID))
}
