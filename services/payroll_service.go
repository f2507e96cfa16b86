package services

import (
	"context"
	"errors"
	"time"
	_ "time/tzdata"

	"hrm/builders"
	"hrm/commands"
	"hrm/config"
	"hrm/constants"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/audit"
	"hrm/services/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayrollService tính và quản lý bảng lương tháng
type PayrollService struct {
	db       *gorm.DB
	recorder *audit.Recorder
	logger   logger.Logger
	policy   config.PayrollPolicy
}

type PayrollServiceOptions struct {
	DB       *gorm.DB
	Recorder *audit.Recorder
	Logger   logger.Logger
	Policy   config.PayrollPolicy
}

func NewPayrollService(opts PayrollServiceOptions) *PayrollService {
	return &PayrollService{
		db:       opts.DB,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		policy:   opts.Policy,
	}
}

// GeneratePayrollInput là đầu vào của một lần tính lương
type GeneratePayrollInput struct {
	EmployeeID      uint
	Month           time.Time
	Bonus           decimal.Decimal
	ExtraDeductions decimal.Decimal
	PaymentDate     *time.Time
}

// StartOfMonth chuẩn hóa một mốc thời gian về 0h ngày đầu tháng UTC
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth trả về số ngày dương lịch của tháng chứa t
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GeneratePayroll tính lương cho một nhân viên một tháng và lưu kết quả.
// Chỉ lương cơ bản được tính theo ngày công; HRA và phụ cấp trả đủ
// bất kể chấm công. Tháng đã có bảng lương thì trả Conflict, không ghi đè.
func (s *PayrollService) GeneratePayroll(ctx context.Context, actorID *uint, input GeneratePayrollInput) (*models.PayrollRecord, error) {
	month := StartOfMonth(input.Month)

	var structure models.SalaryStructure
	if err := s.db.WithContext(ctx).Where("employee_id = ?", input.EmployeeID).First(&structure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Nhân viên chưa có cấu trúc lương", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn cấu trúc lương", err)
	}

	var existing models.PayrollRecord
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND payroll_month = ?", input.EmployeeID, month).
		First(&existing).Error
	if err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "Tháng này đã có bảng lương, dùng cập nhật thay vì tạo lại", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi kiểm tra bảng lương hiện có", err)
	}

	totalDays := DaysInMonth(month)
	paidDays, err := s.countPaidDays(ctx, input.EmployeeID, month)
	if err != nil {
		return nil, err
	}

	record, err := s.compute(&structure, month, totalDays, paidDays, input)
	if err != nil {
		return nil, err
	}

	err = s.recorder.WithinTransaction(ctx, actorID, func(cs *audit.Changeset) error {
		return cs.Create(record)
	})
	if err != nil {
		// Hai request tạo lương cùng tháng đua nhau trên unique index:
		// bên thua nhận Conflict, không bao giờ có bản ghi trùng
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "Tháng này đã có bảng lương", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi lưu bảng lương", err)
	}

	s.logger.Info("Đã tạo bảng lương tháng %s cho nhân viên %d, thực lãnh %s",
		month.Format("01/2006"), input.EmployeeID, record.NetPay.StringFixed(2))
	return record, nil
}

// UpdatePayroll tính lại bảng lương với bonus/khấu trừ mới.
// Chỉ được phép khi trạng thái còn Pending.
func (s *PayrollService) UpdatePayroll(ctx context.Context, actorID *uint, payrollID uint, bonus, extraDeductions decimal.Decimal) (*models.PayrollRecord, error) {
	var record models.PayrollRecord
	if err := s.db.WithContext(ctx).First(&record, payrollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy bảng lương", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bảng lương", err)
	}

	if record.PaymentStatus != constants.PaymentStatusPending {
		return nil, apperrors.NewAppError(apperrors.ErrCodePayrollImmutable, "Bảng lương đã xử lý, không được sửa", nil)
	}

	var structure models.SalaryStructure
	if err := s.db.WithContext(ctx).Where("employee_id = ?", record.EmployeeID).First(&structure).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Nhân viên chưa có cấu trúc lương", err)
	}

	paidDays, err := s.countPaidDays(ctx, record.EmployeeID, record.PayrollMonth)
	if err != nil {
		return nil, err
	}

	recomputed, err := s.compute(&structure, record.PayrollMonth, record.TotalDays, paidDays, GeneratePayrollInput{
		EmployeeID:      record.EmployeeID,
		Month:           record.PayrollMonth,
		Bonus:           bonus,
		ExtraDeductions: extraDeductions,
		PaymentDate:     &record.PaymentDate,
	})
	if err != nil {
		return nil, err
	}

	before := record
	record.PaidDays = recomputed.PaidDays
	record.AdjustedBasic = recomputed.AdjustedBasic
	record.GrossSalary = recomputed.GrossSalary
	record.Bonus = recomputed.Bonus
	record.TotalDeductions = recomputed.TotalDeductions
	record.NetPay = recomputed.NetPay

	err = s.recorder.WithinTransaction(ctx, actorID, func(cs *audit.Changeset) error {
		return cs.Update(&before, &record)
	})
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật bảng lương", err)
	}

	return &record, nil
}

// ChangeStatus chuyển trạng thái thanh toán theo đúng thứ tự
// Pending -> Processed -> Paid
func (s *PayrollService) ChangeStatus(ctx context.Context, actorID *uint, payrollID uint, targetStatus string) (*models.PayrollRecord, error) {
	var record models.PayrollRecord
	if err := s.db.WithContext(ctx).First(&record, payrollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy bảng lương", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bảng lương", err)
	}

	command, err := commands.ForStatus(targetStatus, &record)
	if err != nil {
		return nil, err
	}

	err = s.recorder.WithinTransaction(ctx, actorID, func(cs *audit.Changeset) error {
		return command.Execute(cs)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi chuyển trạng thái bảng lương", err)
	}

	return &record, nil
}

// GetPayroll trả về bảng lương theo id
func (s *PayrollService) GetPayroll(ctx context.Context, payrollID uint) (*models.PayrollRecord, error) {
	var record models.PayrollRecord
	if err := s.db.WithContext(ctx).Preload("Employee").First(&record, payrollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy bảng lương", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bảng lương", err)
	}
	return &record, nil
}

// ListByMonth trả về mọi bảng lương của một tháng
func (s *PayrollService) ListByMonth(ctx context.Context, month time.Time) ([]models.PayrollRecord, error) {
	var records []models.PayrollRecord
	err := s.db.WithContext(ctx).
		Preload("Employee").
		Where("payroll_month = ?", StartOfMonth(month)).
		Order("employee_id").
		Find(&records).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bảng lương theo tháng", err)
	}
	return records, nil
}

// ListByEmployee trả về lịch sử lương của một nhân viên
func (s *PayrollService) ListByEmployee(ctx context.Context, employeeID uint) ([]models.PayrollRecord, error) {
	var records []models.PayrollRecord
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("payroll_month DESC").
		Find(&records).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn lịch sử lương", err)
	}
	return records, nil
}

// compute áp dụng công thức lương: chỉ lương cơ bản pro-rate theo công,
// HRA và phụ cấp trả đủ; thực lãnh âm bị từ chối trước khi ghi
func (s *PayrollService) compute(structure *models.SalaryStructure, month time.Time, totalDays int, paidDays float64, input GeneratePayrollInput) (*models.PayrollRecord, error) {
	if totalDays <= 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidMonth, "Tháng lương không hợp lệ", nil)
	}
	if input.Bonus.IsNegative() || input.ExtraDeductions.IsNegative() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, "Bonus và khấu trừ bổ sung phải không âm", nil)
	}

	paid := decimal.NewFromFloat(paidDays)
	total := decimal.NewFromInt(int64(totalDays))

	adjustedBasic := structure.BasicSalary.Mul(paid).Div(total).Round(2)
	gross := adjustedBasic.Add(structure.HRA).Add(structure.Allowances).Add(input.Bonus)
	totalDeductions := structure.TotalDeductions().Add(input.ExtraDeductions)
	netPay := gross.Sub(totalDeductions)

	if netPay.IsNegative() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNegativeNetPay,
			"Tổng khấu trừ vượt quá thu nhập, thực lãnh âm không được phép", nil)
	}

	paymentDate := time.Now()
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}

	record := builders.NewPayrollBuilder().
		WithEmployee(input.EmployeeID).
		WithMonth(month).
		WithAttendance(paidDays, totalDays).
		WithEarnings(adjustedBasic, gross, input.Bonus).
		WithDeductions(totalDeductions, netPay).
		WithPayment(paymentDate, constants.PaymentStatusPending).
		Build()

	return record, nil
}

// countPaidDays đếm số ngày công hưởng lương trong tháng:
// Present = 1, HalfDay = hệ số policy, Leave/Holiday theo policy,
// Absent và ngày không có bản ghi = 0
func (s *PayrollService) countPaidDays(ctx context.Context, employeeID uint, month time.Time) (float64, error) {
	monthStart := StartOfMonth(month)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var rows []models.Attendance
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, monthStart, nextMonth).
		Find(&rows).Error
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn chấm công", err)
	}

	var paidDays float64
	for _, row := range rows {
		switch row.Status {
		case constants.AttendanceStatusPresent:
			paidDays++
		case constants.AttendanceStatusHalfDay:
			paidDays += s.policy.HalfDayFactor
		case constants.AttendanceStatusLeave:
			if s.policy.PaidLeave {
				paidDays++
			}
		case constants.AttendanceStatusHoliday:
			if s.policy.PaidHoliday {
				paidDays++
			}
		}
	}
	return paidDays, nil
}
