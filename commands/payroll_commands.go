package commands

import (
	"hrm/constants"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/audit"
)

// PayrollCommand định nghĩa interface cho các command chuyển trạng thái
type PayrollCommand interface {
	Execute(cs *audit.Changeset) error
}

// ProcessPayrollCommand chuyển payroll từ Pending sang Processed
type ProcessPayrollCommand struct {
	record *models.PayrollRecord
}

func NewProcessPayrollCommand(record *models.PayrollRecord) *ProcessPayrollCommand {
	return &ProcessPayrollCommand{record: record}
}

func (c *ProcessPayrollCommand) Execute(cs *audit.Changeset) error {
	before := *c.record
	state := models.GetPayrollState(c.record.PaymentStatus)
	if err := state.Process(c.record); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, "Không thể chuyển trạng thái bảng lương", err)
	}
	return cs.Update(&before, c.record)
}

// PayPayrollCommand chuyển payroll từ Processed sang Paid
type PayPayrollCommand struct {
	record *models.PayrollRecord
}

func NewPayPayrollCommand(record *models.PayrollRecord) *PayPayrollCommand {
	return &PayPayrollCommand{record: record}
}

func (c *PayPayrollCommand) Execute(cs *audit.Changeset) error {
	before := *c.record
	state := models.GetPayrollState(c.record.PaymentStatus)
	if err := state.Pay(c.record); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, "Không thể chuyển trạng thái bảng lương", err)
	}
	return cs.Update(&before, c.record)
}

// ForStatus trả về command tương ứng với trạng thái đích
func ForStatus(target string, record *models.PayrollRecord) (PayrollCommand, error) {
	switch target {
	case constants.PaymentStatusProcessed:
		return NewProcessPayrollCommand(record), nil
	case constants.PaymentStatusPaid:
		return NewPayPayrollCommand(record), nil
	default:
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Trạng thái đích không hợp lệ", nil)
	}
}
