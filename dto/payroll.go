package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneratePayrollRequest định nghĩa request tính lương, tháng dạng mm/yyyy
type GeneratePayrollRequest struct {
	EmployeeID      uint            `json:"employeeId" binding:"required"`
	Month           string          `json:"month" binding:"required"`
	Bonus           decimal.Decimal `json:"bonus"`
	ExtraDeductions decimal.Decimal `json:"extraDeductions"`
	PaymentDate     *time.Time      `json:"paymentDate"`
}

// UpdatePayrollRequest định nghĩa request cập nhật bảng lương còn Pending
type UpdatePayrollRequest struct {
	PayrollID       uint            `json:"payrollId" binding:"required"`
	Bonus           decimal.Decimal `json:"bonus"`
	ExtraDeductions decimal.Decimal `json:"extraDeductions"`
}

// PayrollStatusRequest định nghĩa request chuyển trạng thái thanh toán
type PayrollStatusRequest struct {
	PayrollID uint   `json:"payrollId" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=Processed Paid"`
}

// PayrollResponse định nghĩa response bảng lương
type PayrollResponse struct {
	ID              uint            `json:"id"`
	EmployeeID      uint            `json:"employeeId"`
	EmployeeName    string          `json:"employeeName,omitempty"`
	PayrollMonth    string          `json:"payrollMonth"`
	TotalDays       int             `json:"totalDays"`
	PaidDays        float64         `json:"paidDays"`
	AdjustedBasic   decimal.Decimal `json:"adjustedBasic"`
	GrossSalary     decimal.Decimal `json:"grossSalary"`
	Bonus           decimal.Decimal `json:"bonus"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetPay          decimal.Decimal `json:"netPay"`
	PaymentDate     time.Time       `json:"paymentDate"`
	PaymentStatus   string          `json:"paymentStatus"`
}
