package validator

import (
	"regexp"
	"time"

	"hrm/errors"
	"hrm/models"
)

// ValidateEmployee validate thông tin nhân viên
func ValidateEmployee(employee *models.Employee) error {
	if employee.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(employee.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if employee.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(employee.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if employee.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(employee.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if employee.Role < 0 || employee.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateSalaryStructure validate cấu trúc lương: mọi thành phần
// phải không âm
func ValidateSalaryStructure(structure *models.SalaryStructure) error {
	if structure.EmployeeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thiếu mã nhân viên", nil)
	}

	if structure.BasicSalary.IsNegative() {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Lương cơ bản phải không âm", nil)
	}
	if structure.HRA.IsNegative() {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "HRA phải không âm", nil)
	}
	if structure.Allowances.IsNegative() {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Phụ cấp phải không âm", nil)
	}
	if structure.Deductions.IsNegative() {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Khấu trừ phải không âm", nil)
	}
	if structure.ProvidentFund.IsNegative() {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Quỹ hưu trí phải không âm", nil)
	}
	if structure.Tax.IsNegative() {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Thuế phải không âm", nil)
	}

	return nil
}

// ValidateDateRange validate khoảng ngày from-to
func ValidateDateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thiếu ngày bắt đầu hoặc kết thúc", nil)
	}
	if to.Before(from) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải không trước ngày bắt đầu", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^0[0-9]{9,10}$`)
	return re.MatchString(phone)
}
