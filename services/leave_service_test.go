package services

import (
	"context"
	"testing"
	"time"

	"hrm/constants"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/audit"
	"hrm/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestLeaveService(db *gorm.DB) *LeaveService {
	return NewLeaveService(LeaveServiceOptions{
		DB:       db,
		Recorder: audit.NewRecorder(db),
		Logger:   logger.NewDefaultLogger(logger.ErrorLevel),
	})
}

func TestApproveLeaveWritesAttendanceSpan(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestLeaveService(db)
	employee := seedEmployee(t, db)
	approver := seedApprover(t, db)

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	request, err := svc.RequestLeave(context.Background(), &employee.ID, employee.ID, from, to, "Việc gia đình")
	require.NoError(t, err)
	assert.Equal(t, constants.LeaveStatusPending, request.Status)

	approved, err := svc.ApproveLeave(context.Background(), &approver.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.LeaveStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, approver.ID, *approved.ApprovedBy)

	var records []models.Attendance
	require.NoError(t, db.Where("employee_id = ?", employee.ID).Order("date").Find(&records).Error)
	require.Len(t, records, 3)
	for _, record := range records {
		assert.Equal(t, constants.AttendanceStatusLeave, record.Status)
	}
}

func TestApproveLeaveSkipsDaysAlreadyRecorded(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestLeaveService(db)
	attendanceSvc := newTestAttendanceService(db)
	employee := seedEmployee(t, db)
	approver := seedApprover(t, db)

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	// Ngày đầu đã có chấm công Present
	_, err := attendanceSvc.CheckIn(context.Background(), &employee.ID, employee.ID, from.Add(9*time.Hour))
	require.NoError(t, err)

	request, err := svc.RequestLeave(context.Background(), &employee.ID, employee.ID, from, to, "")
	require.NoError(t, err)
	_, err = svc.ApproveLeave(context.Background(), &approver.ID, request.ID)
	require.NoError(t, err)

	var records []models.Attendance
	require.NoError(t, db.Where("employee_id = ?", employee.ID).Order("date").Find(&records).Error)
	require.Len(t, records, 2)
	assert.Equal(t, constants.AttendanceStatusPresent, records[0].Status)
	assert.Equal(t, constants.AttendanceStatusLeave, records[1].Status)
}

func TestRejectLeave(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestLeaveService(db)
	employee := seedEmployee(t, db)
	approver := seedApprover(t, db)

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	request, err := svc.RequestLeave(context.Background(), &employee.ID, employee.ID, from, from, "")
	require.NoError(t, err)

	rejected, err := svc.RejectLeave(context.Background(), &approver.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.LeaveStatusRejected, rejected.Status)

	// Không ghi chấm công khi đơn bị từ chối
	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).Count(&count).Error)
	assert.Zero(t, count)

	// Đơn đã xử lý không được xử lý lại
	_, err = svc.ApproveLeave(context.Background(), &approver.ID, request.ID)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidOperation))
}

func TestRequestLeaveInvalidRange(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestLeaveService(db)
	employee := seedEmployee(t, db)

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	_, err := svc.RequestLeave(context.Background(), &employee.ID, employee.ID, from, from.AddDate(0, 0, -1), "")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
}

func seedApprover(t *testing.T, db *gorm.DB) *models.Employee {
	t.Helper()
	approver := &models.Employee{
		Name:        "Lê Thị HR",
		Email:       "hr@example.com",
		Password:    "hashed",
		PhoneNumber: "0912345678",
		Role:        constants.RoleHR,
		Status:      constants.EmployeeStatusActive,
	}
	require.NoError(t, db.Create(approver).Error)
	return approver
}
