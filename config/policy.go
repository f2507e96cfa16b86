package config

import "os"

// PayrollPolicy gom các quyết định tính lương mà nghiệp vụ để mở:
// ngày Leave/Holiday có được tính là ngày công hưởng lương không,
// và hệ số cho ngày làm nửa buổi.
type PayrollPolicy struct {
	PaidLeave     bool
	PaidHoliday   bool
	HalfDayFactor float64
}

// DefaultPayrollPolicy là policy mặc định: nghỉ phép và nghỉ lễ
// đều hưởng lương, nửa buổi tính 0.5 công
func DefaultPayrollPolicy() PayrollPolicy {
	return PayrollPolicy{
		PaidLeave:     true,
		PaidHoliday:   true,
		HalfDayFactor: 0.5,
	}
}

// LoadPayrollPolicy đọc policy từ biến môi trường, thiếu thì dùng mặc định
func LoadPayrollPolicy() PayrollPolicy {
	policy := DefaultPayrollPolicy()
	if v := os.Getenv("PAYROLL_PAID_LEAVE"); v != "" {
		policy.PaidLeave = v != "false" && v != "0"
	}
	if v := os.Getenv("PAYROLL_PAID_HOLIDAY"); v != "" {
		policy.PaidHoliday = v != "false" && v != "0"
	}
	return policy
}
