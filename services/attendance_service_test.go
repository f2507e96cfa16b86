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

func newTestAttendanceService(db *gorm.DB) *AttendanceService {
	return NewAttendanceService(AttendanceServiceOptions{
		DB:       db,
		Recorder: audit.NewRecorder(db),
		Logger:   logger.NewDefaultLogger(logger.ErrorLevel),
	})
}

func TestCheckInCheckOutWorkingHours(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAttendanceService(db)
	employee := seedEmployee(t, db)

	morning := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	record, err := svc.CheckIn(context.Background(), &employee.ID, employee.ID, morning)
	require.NoError(t, err)
	assert.Equal(t, constants.AttendanceStatusPresent, record.Status)
	assert.Nil(t, record.LogoutTime)

	evening := time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC)
	record, err = svc.CheckOut(context.Background(), &employee.ID, employee.ID, evening)
	require.NoError(t, err)
	require.NotNil(t, record.LogoutTime)
	assert.InDelta(t, 9.5, record.WorkingHours, 0.001)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAttendanceService(db)
	employee := seedEmployee(t, db)

	at := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	_, err := svc.CheckIn(context.Background(), &employee.ID, employee.ID, at)
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), &employee.ID, employee.ID, at.Add(time.Hour))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDuplicateCheckIn))

	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAttendanceService(db)
	employee := seedEmployee(t, db)

	_, err := svc.CheckOut(context.Background(), &employee.ID, employee.ID, time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
}

func TestCheckOutBeforeCheckIn(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAttendanceService(db)
	employee := seedEmployee(t, db)

	at := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	_, err := svc.CheckIn(context.Background(), &employee.ID, employee.ID, at)
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), &employee.ID, employee.ID, at.Add(-time.Hour))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
}

func TestCheckOutTwiceSameDay(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAttendanceService(db)
	employee := seedEmployee(t, db)

	at := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	_, err := svc.CheckIn(context.Background(), &employee.ID, employee.ID, at)
	require.NoError(t, err)

	first, err := svc.CheckOut(context.Background(), &employee.ID, employee.ID, at.Add(8*time.Hour))
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), &employee.ID, employee.ID, at.Add(9*time.Hour))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDuplicateCheckOut))

	// Giờ chốt lần đầu không bị ghi đè
	var record models.Attendance
	require.NoError(t, db.First(&record, first.ID).Error)
	assert.InDelta(t, 8.0, record.WorkingHours, 0.001)
}

func TestCheckInInactiveEmployee(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAttendanceService(db)
	employee := seedEmployee(t, db)
	require.NoError(t, db.Model(employee).Update("status", constants.EmployeeStatusInactive).Error)

	_, err := svc.CheckIn(context.Background(), &employee.ID, employee.ID, time.Now())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidOperation))
}

func TestMarkHolidaySkipsExistingRecords(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAttendanceService(db)
	first := seedEmployee(t, db)
	second := &models.Employee{
		Name:        "Trần Thị Bình",
		Email:       "binh.tran@example.com",
		Password:    "hashed",
		PhoneNumber: "0907654321",
		Status:      constants.EmployeeStatusActive,
	}
	require.NoError(t, db.Create(second).Error)

	day := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)
	// Nhân viên thứ nhất đã điểm danh trước khi ngày lễ được khai báo
	_, err := svc.CheckIn(context.Background(), &first.ID, first.ID, day.Add(8*time.Hour))
	require.NoError(t, err)

	err = svc.MarkHoliday(context.Background(), nil, models.Holiday{Name: "Quốc khánh", Date: day})
	require.NoError(t, err)

	var records []models.Attendance
	require.NoError(t, db.Where("date = ?", day).Order("employee_id").Find(&records).Error)
	require.Len(t, records, 2)
	assert.Equal(t, constants.AttendanceStatusPresent, records[0].Status)
	assert.Equal(t, constants.AttendanceStatusHoliday, records[1].Status)

	// Mutation của hệ thống ghi audit với sentinel SYSTEM
	var entry models.AuditLog
	require.NoError(t, db.Where("entity_name = ? AND action = ?", "Attendance", constants.AuditActionCreated).
		Order("id DESC").First(&entry).Error)
	assert.Equal(t, constants.AuditActorSystem, entry.ActorName)
}
