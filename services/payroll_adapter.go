package services

import (
	"context"
	"time"

	"hrm/constants"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/notification"

	"github.com/olahol/melody"
	"github.com/shopspring/decimal"
)

// PayrollServiceAdapter cho phép cron job gọi tính lương hàng loạt
// mà không phụ thuộc trực tiếp vào PayrollService
type PayrollServiceAdapter struct {
	payrollService *PayrollService
}

func NewPayrollServiceAdapter(payrollService *PayrollService) *PayrollServiceAdapter {
	return &PayrollServiceAdapter{payrollService: payrollService}
}

// RunMonthlyPayroll tính lương một tháng cho mọi nhân viên active còn
// thiếu bảng lương. Chạy bởi cron nên actor là nil (ghi audit SYSTEM).
// Nhân viên đã có bảng lương hoặc chưa có cấu trúc lương được bỏ qua,
// lỗi từng người không làm dừng cả đợt.
func (a *PayrollServiceAdapter) RunMonthlyPayroll(m *melody.Melody, month time.Time) error {
	ctx := context.Background()
	svc := a.payrollService

	var employees []models.Employee
	if err := svc.db.WithContext(ctx).Where("status = ?", constants.EmployeeStatusActive).Find(&employees).Error; err != nil {
		return err
	}

	notifier := notification.NewMelodyService(m)
	generated := 0
	for _, employee := range employees {
		record, err := svc.GeneratePayroll(ctx, nil, GeneratePayrollInput{
			EmployeeID:      employee.ID,
			Month:           month,
			Bonus:           decimal.Zero,
			ExtraDeductions: decimal.Zero,
		})
		if err != nil {
			if apperrors.HasCode(err, apperrors.ErrCodeConflict) || apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
				continue
			}
			svc.logger.Error("Tính lương tự động thất bại cho nhân viên %d: %v", employee.ID, err)
			continue
		}
		generated++

		message := notification.NewPayrollMessageBuilder(
			employee.ID,
			record.PayrollMonth.Format("01/2006"),
			record.NetPay,
			record.PaymentStatus,
		).Build()
		if err := notifier.SendMessage(message); err != nil {
			svc.logger.Warn("Không gửi được thông báo lương cho nhân viên %d: %v", employee.ID, err)
		}
	}

	svc.logger.Info("Tính lương tự động tháng %s hoàn tất, tạo mới %d bảng lương", month.Format("01/2006"), generated)
	return nil
}
