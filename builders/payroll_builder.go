package builders

import (
	"time"

	"hrm/models"

	"github.com/shopspring/decimal"
)

// PayrollBuilder giúp tạo payroll record theo từng bước
type PayrollBuilder struct {
	record *models.PayrollRecord
}

// NewPayrollBuilder tạo instance mới của PayrollBuilder
func NewPayrollBuilder() *PayrollBuilder {
	return &PayrollBuilder{
		record: &models.PayrollRecord{},
	}
}

// WithEmployee thêm thông tin nhân viên
func (b *PayrollBuilder) WithEmployee(employeeID uint) *PayrollBuilder {
	b.record.EmployeeID = employeeID
	return b
}

// WithMonth thêm tháng lương (đã chuẩn hóa về đầu tháng)
func (b *PayrollBuilder) WithMonth(month time.Time) *PayrollBuilder {
	b.record.PayrollMonth = month
	return b
}

// WithAttendance thêm số công và số ngày của tháng
func (b *PayrollBuilder) WithAttendance(paidDays float64, totalDays int) *PayrollBuilder {
	b.record.PaidDays = paidDays
	b.record.TotalDays = totalDays
	return b
}

// WithEarnings thêm các khoản thu nhập
func (b *PayrollBuilder) WithEarnings(adjustedBasic, gross, bonus decimal.Decimal) *PayrollBuilder {
	b.record.AdjustedBasic = adjustedBasic
	b.record.GrossSalary = gross
	b.record.Bonus = bonus
	return b
}

// WithDeductions thêm tổng khấu trừ và thực lãnh
func (b *PayrollBuilder) WithDeductions(totalDeductions, netPay decimal.Decimal) *PayrollBuilder {
	b.record.TotalDeductions = totalDeductions
	b.record.NetPay = netPay
	return b
}

// WithPayment thêm ngày chi trả và trạng thái
func (b *PayrollBuilder) WithPayment(paymentDate time.Time, status string) *PayrollBuilder {
	b.record.PaymentDate = paymentDate
	b.record.PaymentStatus = status
	return b
}

// Build tạo payroll record hoàn chỉnh
func (b *PayrollBuilder) Build() *models.PayrollRecord {
	return b.record
}
