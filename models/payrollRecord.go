package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord là kết quả tính lương của một nhân viên cho một tháng,
// unique theo (employee_id, payroll_month)
type PayrollRecord struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	EmployeeID      uint            `gorm:"not null;uniqueIndex:idx_employee_month" json:"employeeId"`
	PayrollMonth    time.Time       `gorm:"type:date;not null;uniqueIndex:idx_employee_month" json:"payrollMonth"`
	TotalDays       int             `gorm:"not null" json:"totalDays"`
	PaidDays        float64         `gorm:"not null" json:"paidDays"`
	AdjustedBasic   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"adjustedBasic"`
	GrossSalary     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"grossSalary"`
	Bonus           decimal.Decimal `gorm:"type:decimal(12,2)" json:"bonus"`
	TotalDeductions decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalDeductions"`
	NetPay          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"netPay"`
	PaymentDate     time.Time       `json:"paymentDate"`
	PaymentStatus   string          `gorm:"type:varchar(20);default:'Pending'" json:"paymentStatus"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:ID"`
	Payslips []Payslip `json:"payslips,omitempty" gorm:"foreignKey:PayrollRecordID"`
}

func (PayrollRecord) EntityName() string { return "PayrollRecord" }

func (p *PayrollRecord) EntityKey() string { return strconv.FormatUint(uint64(p.ID), 10) }
