package models

import (
	"strconv"
	"time"
)

// EmployeeDocument lưu metadata của tài liệu nhân sự đã upload
type EmployeeDocument struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employeeId"`
	Title      string    `gorm:"not null" json:"title"`
	FileURL    string    `gorm:"not null" json:"fileUrl"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploadedAt"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:ID"`
}

func (EmployeeDocument) EntityName() string { return "EmployeeDocument" }

func (d *EmployeeDocument) EntityKey() string { return strconv.FormatUint(uint64(d.ID), 10) }
