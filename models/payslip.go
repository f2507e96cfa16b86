package models

import (
	"strconv"
	"time"
)

// Payslip là artifact đã render của một payroll record; có thể
// generate lại bất cứ lúc nào, không bao giờ là source of truth
// cho số tiền lương
type Payslip struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PayrollRecordID uint      `gorm:"not null;index" json:"payrollRecordId"`
	Reference       string    `gorm:"type:varchar(64);uniqueIndex" json:"reference"`
	FileName        string    `json:"fileName"`
	FileURL         string    `json:"fileUrl"`
	GeneratedAt     time.Time `gorm:"autoCreateTime" json:"generatedAt"`

	PayrollRecord *PayrollRecord `json:"payrollRecord,omitempty" gorm:"foreignKey:PayrollRecordID;references:ID"`
}

func (Payslip) EntityName() string { return "Payslip" }

func (p *Payslip) EntityKey() string { return strconv.FormatUint(uint64(p.ID), 10) }
