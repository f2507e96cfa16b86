package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeResponse định nghĩa response cho nhân viên
type EmployeeResponse struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	PhoneNumber          string    `json:"phoneNumber"`
	Role                 int       `json:"role"`
	Status               string    `json:"status"`
	Gender               int       `json:"gender"`
	DateOfBirth          string    `json:"dateOfBirth,omitempty"`
	Avatar               string    `json:"avatar,omitempty"`
	Designation          string    `json:"designation,omitempty"`
	JoinDate             time.Time `json:"joinDate"`
	DepartmentID         *uint     `json:"departmentId,omitempty"`
	DepartmentName       string    `json:"departmentName,omitempty"`
	ManagedDepartmentIDs []int64   `json:"managedDepartmentIds,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// CreateEmployeeRequest định nghĩa request tạo nhân viên
type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Role         int    `json:"role"`
	Gender       int    `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	Designation  string `json:"designation"`
	DepartmentID *uint  `json:"departmentId"`
}

// UpdateEmployeeRequest định nghĩa request cập nhật nhân viên
type UpdateEmployeeRequest struct {
	ID           uint   `json:"id" binding:"required"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phoneNumber"`
	Avatar       string `json:"avatar"`
	DateOfBirth  string `json:"dateOfBirth"`
	Gender       int    `json:"gender"`
	Designation  string `json:"designation"`
	DepartmentID *uint  `json:"departmentId"`
}

// EmployeeStatusRequest định nghĩa request đổi trạng thái nhân viên
type EmployeeStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=Active Inactive"`
}

// SalaryStructureRequest định nghĩa request tạo/cập nhật cấu trúc lương
type SalaryStructureRequest struct {
	EmployeeID    uint            `json:"employeeId" binding:"required"`
	BasicSalary   decimal.Decimal `json:"basicSalary" binding:"required"`
	HRA           decimal.Decimal `json:"hra"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
	ProvidentFund decimal.Decimal `json:"providentFund"`
	Tax           decimal.Decimal `json:"tax"`
}

// SalaryStructureResponse định nghĩa response cấu trúc lương
type SalaryStructureResponse struct {
	ID            uint            `json:"id"`
	EmployeeID    uint            `json:"employeeId"`
	BasicSalary   decimal.Decimal `json:"basicSalary"`
	HRA           decimal.Decimal `json:"hra"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
	ProvidentFund decimal.Decimal `json:"providentFund"`
	Tax           decimal.Decimal `json:"tax"`
	GrossSalary   decimal.Decimal `json:"grossSalary"`
	NetSalary     decimal.Decimal `json:"netSalary"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
