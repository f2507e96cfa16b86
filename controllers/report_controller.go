package controllers

import (
	"fmt"
	"net/http"
	"time"

	"hrm/response"
	"hrm/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ReportController xuất báo cáo lương ra file Excel
type ReportController struct {
	PayrollService *services.PayrollService
}

func NewReportController(payrollService *services.PayrollService) *ReportController {
	return &ReportController{PayrollService: payrollService}
}

// ExportPayrollReport xuất bảng lương một tháng mm/yyyy ra file xlsx
func (ctrl *ReportController) ExportPayrollReport(c *gin.Context) {
	monthStr := c.Query("month")
	month, err := time.Parse("01/2006", monthStr)
	if err != nil {
		response.BadRequest(c, "Định dạng tháng không hợp lệ, dùng mm/yyyy")
		return
	}

	records, err := ctrl.PayrollService.ListByMonth(c.Request.Context(), month)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "BangLuong"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Mã NV", "Họ tên", "Tháng", "Ngày công", "Tổng ngày", "Lương cơ bản theo công", "Tổng thu nhập", "Thưởng", "Tổng khấu trừ", "Thực lãnh", "Trạng thái"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, record := range records {
		employeeName := ""
		if record.Employee != nil {
			employeeName = record.Employee.Name
		}
		values := []interface{}{
			record.EmployeeID,
			employeeName,
			record.PayrollMonth.Format("01/2006"),
			record.PaidDays,
			record.TotalDays,
			record.AdjustedBasic.StringFixed(2),
			record.GrossSalary.StringFixed(2),
			record.Bonus.StringFixed(2),
			record.TotalDeductions.StringFixed(2),
			record.NetPay.StringFixed(2),
			record.PaymentStatus,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	fileName := fmt.Sprintf("bang-luong-%s.xlsx", month.Format("2006-01"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		response.ServerError(c)
		return
	}
}
