package dto

import "time"

// GeneratePayslipRequest định nghĩa request tạo phiếu lương
type GeneratePayslipRequest struct {
	PayrollID uint `json:"payrollId" binding:"required"`
}

// PayslipResponse định nghĩa response phiếu lương
type PayslipResponse struct {
	ID              uint      `json:"id"`
	PayrollRecordID uint      `json:"payrollRecordId"`
	Reference       string    `json:"reference"`
	FileName        string    `json:"fileName"`
	FileURL         string    `json:"fileUrl"`
	GeneratedAt     time.Time `json:"generatedAt"`
}
