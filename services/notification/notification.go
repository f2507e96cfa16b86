package notification

import (
	"fmt"

	"github.com/olahol/melody"
	"github.com/shopspring/decimal"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

type PayrollMessageBuilder struct {
	employeeID uint
	month      string
	netPay     decimal.Decimal
	status     string
}

func NewPayrollMessageBuilder(employeeID uint, month string, netPay decimal.Decimal, status string) *PayrollMessageBuilder {
	return &PayrollMessageBuilder{
		employeeID: employeeID,
		month:      month,
		netPay:     netPay,
		status:     status,
	}
}

func (b *PayrollMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Bảng lương tháng %s của nhân viên %d đã chuyển sang trạng thái %s, thực lãnh %s.",
		b.month, b.employeeID, b.status, b.netPay.StringFixed(2))
}
