package models

import (
	"strconv"
	"time"
)

type Holiday struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date" gorm:"type:date;uniqueIndex;not null"` // Ngày nghỉ lễ
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Holiday) EntityName() string { return "Holiday" }

func (h *Holiday) EntityKey() string { return strconv.FormatUint(uint64(h.ID), 10) }
