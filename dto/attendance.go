package dto

import "time"

// CheckInRequest định nghĩa request điểm danh
type CheckInRequest struct {
	EmployeeID uint `json:"employeeId" binding:"required"`
}

// CheckOutRequest định nghĩa request check-out
type CheckOutRequest struct {
	EmployeeID uint `json:"employeeId" binding:"required"`
}

// AttendanceResponse định nghĩa response chấm công
type AttendanceResponse struct {
	ID           uint       `json:"id"`
	EmployeeID   uint       `json:"employeeId"`
	Date         string     `json:"date"`
	LoginTime    time.Time  `json:"loginTime"`
	LogoutTime   *time.Time `json:"logoutTime,omitempty"`
	WorkingHours float64    `json:"workingHours"`
	Status       string     `json:"status"`
}

// LeaveRequestInput định nghĩa request xin nghỉ phép, ngày dạng dd/mm/yyyy
type LeaveRequestInput struct {
	EmployeeID uint   `json:"employeeId" binding:"required"`
	FromDate   string `json:"fromDate" binding:"required"`
	ToDate     string `json:"toDate" binding:"required"`
	Reason     string `json:"reason"`
}

// LeaveResponse định nghĩa response đơn nghỉ phép
type LeaveResponse struct {
	ID         uint      `json:"id"`
	EmployeeID uint      `json:"employeeId"`
	FromDate   string    `json:"fromDate"`
	ToDate     string    `json:"toDate"`
	Reason     string    `json:"reason,omitempty"`
	Status     string    `json:"status"`
	ApprovedBy *uint     `json:"approvedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HolidayRequest định nghĩa request tạo ngày nghỉ lễ, ngày dạng dd/mm/yyyy
type HolidayRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}
