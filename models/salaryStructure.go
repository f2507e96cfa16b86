package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure là cấu trúc lương hiện hành của một nhân viên,
// mỗi nhân viên chỉ có một bản ghi active
type SalaryStructure struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	EmployeeID    uint            `gorm:"uniqueIndex;not null" json:"employeeId"`
	BasicSalary   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"basicSalary"`
	HRA           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"hra"`
	Allowances    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"allowances"`
	Deductions    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"deductions"`
	ProvidentFund decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"providentFund"`
	Tax           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:ID"`
}

func (SalaryStructure) EntityName() string { return "SalaryStructure" }

func (s *SalaryStructure) EntityKey() string { return strconv.FormatUint(uint64(s.ID), 10) }

// GrossSalary = basic + HRA + allowances
func (s *SalaryStructure) GrossSalary() decimal.Decimal {
	return s.BasicSalary.Add(s.HRA).Add(s.Allowances)
}

// TotalDeductions = deductions + PF + tax
func (s *SalaryStructure) TotalDeductions() decimal.Decimal {
	return s.Deductions.Add(s.ProvidentFund).Add(s.Tax)
}

// NetSalary = gross - tổng khấu trừ
func (s *SalaryStructure) NetSalary() decimal.Decimal {
	return s.GrossSalary().Sub(s.TotalDeductions())
}
