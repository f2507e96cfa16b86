package models

import (
	"strconv"
	"time"
)

type LeaveRequest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	EmployeeID uint      `gorm:"not null;index" json:"employeeId"`
	FromDate   time.Time `gorm:"type:date;not null" json:"fromDate"`
	ToDate     time.Time `gorm:"type:date;not null" json:"toDate"`
	Reason     string    `json:"reason"`
	Status     string    `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	ApprovedBy *uint     `json:"approvedBy,omitempty"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveRequest) EntityName() string { return "LeaveRequest" }

func (l *LeaveRequest) EntityKey() string { return strconv.FormatUint(uint64(l.ID), 10) }
