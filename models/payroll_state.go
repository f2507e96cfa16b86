package models

import (
	"errors"

	"hrm/constants"
)

// PayrollState định nghĩa interface cho các trạng thái thanh toán
type PayrollState interface {
	Process(record *PayrollRecord) error
	Pay(record *PayrollRecord) error
}

// PendingState trạng thái chờ xử lý, còn được phép sửa
type PendingState struct{}

func (s *PendingState) Process(record *PayrollRecord) error {
	record.PaymentStatus = constants.PaymentStatusProcessed
	return nil
}

func (s *PendingState) Pay(record *PayrollRecord) error {
	return errors.New("cannot pay unprocessed payroll")
}

// ProcessedState trạng thái đã xử lý, chờ chi trả
type ProcessedState struct{}

func (s *ProcessedState) Process(record *PayrollRecord) error {
	return errors.New("payroll already processed")
}

func (s *ProcessedState) Pay(record *PayrollRecord) error {
	record.PaymentStatus = constants.PaymentStatusPaid
	return nil
}

// PaidState trạng thái đã chi trả, bất biến
type PaidState struct{}

func (s *PaidState) Process(record *PayrollRecord) error {
	return errors.New("payroll already paid")
}

func (s *PaidState) Pay(record *PayrollRecord) error {
	return errors.New("payroll already paid")
}

// GetPayrollState trả về state tương ứng với trạng thái thanh toán
func GetPayrollState(status string) PayrollState {
	switch status {
	case constants.PaymentStatusPending:
		return &PendingState{}
	case constants.PaymentStatusProcessed:
		return &ProcessedState{}
	case constants.PaymentStatusPaid:
		return &PaidState{}
	default:
		return &PendingState{}
	}
}
