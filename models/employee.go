package models

import (
	"strconv"
	"time"

	"hrm/constants"

	"github.com/lib/pq"
)

type Employee struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `gorm:"default:New Employee" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	Password      string    `json:"-"`
	PhoneNumber   string    `gorm:"type:varchar(11)" json:"phoneNumber"`
	Role          int       `gorm:"default:0" json:"role"`
	Status        string    `gorm:"type:varchar(20);default:'Active'" json:"status"`
	Gender        int       `json:"gender"`
	DateOfBirth   string    `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	Avatar        string    `json:"avatar"`
	JoinDate      time.Time `json:"joinDate"`
	DepartmentID  *uint     `json:"departmentId,omitempty"`
	Designation   string    `gorm:"type:varchar(100)" json:"designation"`

	// Danh sách phòng ban mà user HR quản lý
	ManagedDepartmentIDs pq.Int64Array `gorm:"type:integer[]" json:"managedDepartmentIds,omitempty"`

	Department      *Department      `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
	SalaryStructure *SalaryStructure `json:"salaryStructure,omitempty" gorm:"foreignKey:EmployeeID;references:ID"`
	Attendances     []Attendance     `json:"attendances,omitempty" gorm:"foreignKey:EmployeeID"`
	PayrollRecords  []PayrollRecord  `json:"payrollRecords,omitempty" gorm:"foreignKey:EmployeeID"`
}

func (Employee) EntityName() string { return "Employee" }

func (e *Employee) EntityKey() string { return strconv.FormatUint(uint64(e.ID), 10) }

// IsActive kiểm tra nhân viên còn làm việc không
func (e *Employee) IsActive() bool {
	return e.Status == constants.EmployeeStatusActive
}
