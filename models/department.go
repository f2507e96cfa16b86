package models

import (
	"strconv"
	"time"
)

type Department struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Code        string    `gorm:"unique;type:varchar(20);not null" json:"code"`
	Description string    `json:"description"`

	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:DepartmentID"`
}

func (Department) EntityName() string { return "Department" }

func (d *Department) EntityKey() string { return strconv.FormatUint(uint64(d.ID), 10) }
