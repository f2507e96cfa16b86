package models

import (
	"strconv"
	"time"
)

// Attendance là bản ghi chấm công một ngày của một nhân viên.
// Tạo khi check-in, cập nhật một lần duy nhất khi check-out,
// sau đó bất biến.
type Attendance struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	EmployeeID   uint       `gorm:"not null;uniqueIndex:idx_employee_date" json:"employeeId"`
	Date         time.Time  `gorm:"type:date;not null;uniqueIndex:idx_employee_date" json:"date"`
	LoginTime    time.Time  `gorm:"not null" json:"loginTime"`
	LogoutTime   *time.Time `json:"logoutTime,omitempty"`
	WorkingHours float64    `json:"workingHours"`
	Status       string     `gorm:"type:varchar(20);default:'Present'" json:"status"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) EntityName() string { return "Attendance" }

func (a *Attendance) EntityKey() string { return strconv.FormatUint(uint64(a.ID), 10) }
