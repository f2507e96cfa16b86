package controllers

import (
	"hrm/dto"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services"

	"github.com/gin-gonic/gin"
)

// PayslipController xử lý generate và tra cứu phiếu lương
type PayslipController struct {
	Service *services.PayslipService
}

func NewPayslipController(service *services.PayslipService) *PayslipController {
	return &PayslipController{Service: service}
}

func toPayslipResponse(payslip *models.Payslip) dto.PayslipResponse {
	return dto.PayslipResponse{
		ID:              payslip.ID,
		PayrollRecordID: payslip.PayrollRecordID,
		Reference:       payslip.Reference,
		FileName:        payslip.FileName,
		FileURL:         payslip.FileURL,
		GeneratedAt:     payslip.GeneratedAt,
	}
}

// GeneratePayslip render phiếu lương cho một bảng lương
func (ctrl *PayslipController) GeneratePayslip(c *gin.Context) {
	var request dto.GeneratePayslipRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	actorID := middleware.ActorID(c)
	payslip, err := ctrl.Service.Generate(c.Request.Context(), actorID, request.PayrollID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toPayslipResponse(payslip))
}

// GetPayslips lấy các phiếu lương đã generate của một bảng lương
func (ctrl *PayslipController) GetPayslips(c *gin.Context) {
	payrollID := parsePositiveInt(c.Query("payrollId"), 0)
	if payrollID == 0 {
		response.BadRequest(c, "Thiếu payrollId")
		return
	}

	payslips, err := ctrl.Service.ListByPayroll(c.Request.Context(), uint(payrollID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]dto.PayslipResponse, 0, len(payslips))
	for i := range payslips {
		responses = append(responses, toPayslipResponse(&payslips[i]))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}
