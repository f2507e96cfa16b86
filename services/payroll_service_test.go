package services

import (
	"context"
	"testing"
	"time"

	"hrm/config"
	"hrm/constants"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/audit"
	"hrm/services/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Department{},
		&models.Employee{},
		&models.SalaryStructure{},
		&models.Attendance{},
		&models.LeaveRequest{},
		&models.Holiday{},
		&models.PayrollRecord{},
		&models.Payslip{},
		&models.AuditLog{},
	)
	require.NoError(t, err)
	return db
}

func newTestPayrollService(db *gorm.DB, policy config.PayrollPolicy) *PayrollService {
	return NewPayrollService(PayrollServiceOptions{
		DB:       db,
		Recorder: audit.NewRecorder(db),
		Logger:   logger.NewDefaultLogger(logger.ErrorLevel),
		Policy:   policy,
	})
}

func seedEmployee(t *testing.T, db *gorm.DB) *models.Employee {
	t.Helper()
	employee := &models.Employee{
		Name:        "Nguyễn Văn An",
		Email:       "an.nguyen@example.com",
		Password:    "hashed",
		PhoneNumber: "0901234567",
		Status:      constants.EmployeeStatusActive,
		JoinDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func seedSalaryStructure(t *testing.T, db *gorm.DB, employeeID uint) *models.SalaryStructure {
	t.Helper()
	structure := &models.SalaryStructure{
		EmployeeID:    employeeID,
		BasicSalary:   decimal.NewFromInt(80000),
		HRA:           decimal.NewFromInt(16000),
		Allowances:    decimal.NewFromInt(8000),
		Deductions:    decimal.NewFromInt(2000),
		ProvidentFund: decimal.NewFromInt(9600),
		Tax:           decimal.NewFromInt(12000),
	}
	require.NoError(t, db.Create(structure).Error)
	return structure
}

func seedPresentDays(t *testing.T, db *gorm.DB, employeeID uint, month time.Time, days int) {
	t.Helper()
	for d := 0; d < days; d++ {
		day := month.AddDate(0, 0, d)
		require.NoError(t, db.Create(&models.Attendance{
			EmployeeID: employeeID,
			Date:       day,
			LoginTime:  day.Add(9 * time.Hour),
			Status:     constants.AttendanceStatusPresent,
		}).Error)
	}
}

// Tháng 6/2025 có 30 ngày
var june2025 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestGeneratePayrollFullMonth(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPayrollService(db, config.DefaultPayrollPolicy())
	employee := seedEmployee(t, db)
	seedSalaryStructure(t, db, employee.ID)
	seedPresentDays(t, db, employee.ID, june2025, 30)

	record, err := svc.GeneratePayroll(context.Background(), &employee.ID, GeneratePayrollInput{
		EmployeeID: employee.ID,
		Month:      june2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, record.TotalDays)
	assert.Equal(t, float64(30), record.PaidDays)
	assert.True(t, record.AdjustedBasic.Equal(decimal.NewFromInt(80000)), "adjustedBasic = %s", record.AdjustedBasic)
	assert.True(t, record.GrossSalary.Equal(decimal.NewFromInt(104000)), "gross = %s", record.GrossSalary)
	assert.True(t, record.TotalDeductions.Equal(decimal.NewFromInt(23600)), "deductions = %s", record.TotalDeductions)
	assert.True(t, record.NetPay.Equal(decimal.NewFromInt(80400)), "netPay = %s", record.NetPay)
	assert.Equal(t, constants.PaymentStatusPending, record.PaymentStatus)
}

func TestGeneratePayrollHalfAttendance(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPayrollService(db, config.DefaultPayrollPolicy())
	employee := seedEmployee(t, db)
	seedSalaryStructure(t, db, employee.ID)
	seedPresentDays(t, db, employee.ID, june2025, 15)

	record, err := svc.GeneratePayroll(context.Background(), &employee.ID, GeneratePayrollInput{
		EmployeeID: employee.ID,
		Month:      june2025,
	})
	require.NoError(t, err)

	// Chỉ lương cơ bản pro-rate theo công, HRA và phụ cấp trả đủ
	assert.Equal(t, float64(15), record.PaidDays)
	assert.True(t, record.AdjustedBasic.Equal(decimal.NewFromInt(40000)), "adjustedBasic = %s", record.AdjustedBasic)
	assert.True(t, record.GrossSalary.Equal(decimal.NewFromInt(64000)), "gross = %s", record.GrossSalary)
	assert.True(t, record.NetPay.Equal(decimal.NewFromInt(40400)), "netPay = %s", record.NetPay)
}

func TestGeneratePayrollHalfDayAndUnpaidLeave(t *testing.T) {
	db := setupTestDB(t)
	policy := config.DefaultPayrollPolicy()
	policy.PaidLeave = false
	svc := newTestPayrollService(db, policy)
	employee := seedEmployee(t, db)
	seedSalaryStructure(t, db, employee.ID)

	// 10 ngày Present, 2 ngày HalfDay, 3 ngày Leave không lương
	seedPresentDays(t, db, employee.ID, june2025, 10)
	for d := 10; d < 12; d++ {
		day := june2025.AddDate(0, 0, d)
		require.NoError(t, db.Create(&models.Attendance{
			EmployeeID: employee.ID, Date: day, LoginTime: day, Status: constants.AttendanceStatusHalfDay,
		}).Error)
	}
	for d := 12; d < 15; d++ {
		day := june2025.AddDate(0, 0, d)
		require.NoError(t, db.Create(&models.Attendance{
			EmployeeID: employee.ID, Date: day, LoginTime: day, Status: constants.AttendanceStatusLeave,
		}).Error)
	}

	record, err := svc.GeneratePayroll(context.Background(), &employee.ID, GeneratePayrollInput{
		EmployeeID: employee.ID,
		Month:      june2025,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(11), record.PaidDays)
}

func TestGeneratePayrollNegativeNetPayRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPayrollService(db, config.DefaultPayrollPolicy())
	employee := seedEmployee(t, db)
	seedSalaryStructure(t, db, employee.ID)
	// Không có ngày công nào: thu nhập chỉ còn HRA + phụ cấp = 24000,
	// khấu trừ 23600 vẫn dương; thêm khấu trừ bổ sung để âm
	_, err := svc.GeneratePayroll(context.Background(), &employee.ID, GeneratePayrollInput{
		EmployeeID:      employee.ID,
		Month:           june2025,
		ExtraDeductions: decimal.NewFromInt(1000),
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNegativeNetPay))

	// Không được ghi bất cứ gì khi bị từ chối
	var count int64
	require.NoError(t, db.Model(&models.PayrollRecord{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGeneratePayrollDuplicateMonthConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPayrollService(db, config.DefaultPayrollPolicy())
	employee := seedEmployee(t, db)
	seedSalaryStructure(t, db, employee.ID)
	seedPresentDays(t, db, employee.ID, june2025, 30)

	_, err := svc.GeneratePayroll(context.Background(), &employee.ID, GeneratePayrollInput{
		EmployeeID: employee.ID,
		Month:      june2025,
	})
	require.NoError(t, err)

	_, err = svc.GeneratePayroll(context.Background(), &employee.ID, GeneratePayrollInput{
		EmployeeID: employee.ID,
		Month:      june2025.AddDate(0, 0, 14), // cùng tháng, mốc giữa tháng
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))

	var count int64
	require.NoError(t, db.Model(&models.PayrollRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGeneratePayrollWithoutStructure(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPayrollService(db, config.DefaultPayrollPolicy())
	employee := seedEmployee(t, db)

	_, err := svc.GeneratePayroll(context.Background(), &employee.ID, GeneratePayrollInput{
		EmployeeID: employee.ID,
		Month:      june2025,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
}

func TestGeneratePayrollWritesAuditEntry(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPayrollService(db, config.DefaultPayrollPolicy())
	employee := seedEmployee(t, db)
	seedSalaryStructure(t, db, employee.ID)
	seedPresentDays(t, db, employee.ID, june2025, 30)

	record, err := svc.GeneratePayroll(context.Background(), &employee.ID, GeneratePayrollInput{
		EmployeeID: employee.ID,
		Month:      june2025,
	})
	require.NoError(t, err)

	var entries []models.AuditLog
	require.NoError(t, db.Where("entity_name = ?", "PayrollRecord").Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, constants.AuditActionCreated, entries[0].Action)
	assert.Equal(t, record.EntityKey(), entries[0].EntityKey)
	assert.Equal(t, employee.ID, entries[0].ActorID)
	assert.NotEmpty(t, entries[0].NewValues)
}

func TestUpdatePayrollOnlyWhilePending(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPayrollService(db, config.DefaultPayrollPolicy())
	employee := seedEmployee(t, db)
	seedSalaryStructure(t, db, employee.ID)
	seedPresentDays(t, db, employee.ID, june2025, 30)

	record, err := svc.GeneratePayroll(context.Background(), &employee.ID, GeneratePayrollInput{
		EmployeeID: employee.ID,
		Month:      june2025,
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePayroll(context.Background(), &employee.ID, record.ID, decimal.NewFromInt(5000), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, updated.NetPay.Equal(decimal.NewFromInt(85400)), "netPay = %s", updated.NetPay)

	_, err = svc.ChangeStatus(context.Background(), &employee.ID, record.ID, constants.PaymentStatusProcessed)
	require.NoError(t, err)

	_, err = svc.UpdatePayroll(context.Background(), &employee.ID, record.ID, decimal.NewFromInt(1), decimal.Zero)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodePayrollImmutable))
}

func TestChangeStatusFollowsOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPayrollService(db, config.DefaultPayrollPolicy())
	employee := seedEmployee(t, db)
	seedSalaryStructure(t, db, employee.ID)
	seedPresentDays(t, db, employee.ID, june2025, 30)

	record, err := svc.GeneratePayroll(context.Background(), &employee.ID, GeneratePayrollInput{
		EmployeeID: employee.ID,
		Month:      june2025,
	})
	require.NoError(t, err)

	// Pending không được nhảy thẳng sang Paid
	_, err = svc.ChangeStatus(context.Background(), &employee.ID, record.ID, constants.PaymentStatusPaid)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidOperation))

	processed, err := svc.ChangeStatus(context.Background(), &employee.ID, record.ID, constants.PaymentStatusProcessed)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusProcessed, processed.PaymentStatus)

	paid, err := svc.ChangeStatus(context.Background(), &employee.ID, record.ID, constants.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusPaid, paid.PaymentStatus)

	// Paid là trạng thái cuối, mọi chuyển tiếp đều bị từ chối
	_, err = svc.ChangeStatus(context.Background(), &employee.ID, record.ID, constants.PaymentStatusProcessed)
	require.Error(t, err)
}

func TestStartOfMonthAndDaysInMonth(t *testing.T) {
	mid := time.Date(2025, 2, 14, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(mid))
	assert.Equal(t, 28, DaysInMonth(mid))
	assert.Equal(t, 29, DaysInMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysInMonth(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}
