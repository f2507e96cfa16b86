package services

import (
	"context"
	"errors"
	"time"

	"hrm/constants"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/audit"
	"hrm/services/logger"

	"gorm.io/gorm"
)

// AttendanceService quản lý chấm công: check-in tạo bản ghi ngày,
// check-out một lần duy nhất chốt số giờ làm
type AttendanceService struct {
	db       *gorm.DB
	recorder *audit.Recorder
	logger   logger.Logger
}

type AttendanceServiceOptions struct {
	DB       *gorm.DB
	Recorder *audit.Recorder
	Logger   logger.Logger
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	return &AttendanceService{
		db:       opts.DB,
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn tạo bản ghi chấm công cho ngày của at; mỗi nhân viên
// một bản ghi mỗi ngày, check-in lần hai trả Conflict
func (s *AttendanceService) CheckIn(ctx context.Context, actorID *uint, employeeID uint, at time.Time) (*models.Attendance, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}
	if !employee.IsActive() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, "Nhân viên không còn hoạt động", nil)
	}

	day := dateOnly(at)

	var existing models.Attendance
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, day).
		First(&existing).Error
	if err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateCheckIn, "Nhân viên đã điểm danh hôm nay", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi kiểm tra chấm công", err)
	}

	record := &models.Attendance{
		EmployeeID: employeeID,
		Date:       day,
		LoginTime:  at,
		Status:     constants.AttendanceStatusPresent,
	}

	err = s.recorder.WithinTransaction(ctx, actorID, func(cs *audit.Changeset) error {
		return cs.Create(record)
	})
	if err != nil {
		// Hai check-in đồng thời đua nhau trên unique (employee_id, date)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateCheckIn, "Nhân viên đã điểm danh hôm nay", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi lưu chấm công", err)
	}

	return record, nil
}

// CheckOut chốt giờ ra cho bản ghi chấm công của ngày at.
// Giờ ra phải sau giờ vào; bản ghi đã có giờ ra thì không chốt lại.
func (s *AttendanceService) CheckOut(ctx context.Context, actorID *uint, employeeID uint, at time.Time) (*models.Attendance, error) {
	day := dateOnly(at)

	var record models.Attendance
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, day).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Hôm nay chưa điểm danh, không thể check-out", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn chấm công", err)
	}

	if record.LogoutTime != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateCheckOut, "Hôm nay đã check-out rồi", nil)
	}

	if !at.After(record.LoginTime) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Giờ check-out phải sau giờ check-in", nil)
	}

	hours := at.Sub(record.LoginTime).Hours()
	if hours < 0 {
		hours = 0
	}

	before := record
	record.LogoutTime = &at
	record.WorkingHours = hours

	err = s.recorder.WithinTransaction(ctx, actorID, func(cs *audit.Changeset) error {
		return cs.Update(&before, &record)
	})
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi lưu check-out", err)
	}

	return &record, nil
}

// MonthAttendance trả về chấm công của một nhân viên trong tháng
func (s *AttendanceService) MonthAttendance(ctx context.Context, employeeID uint, month time.Time) ([]models.Attendance, error) {
	monthStart := StartOfMonth(month)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var rows []models.Attendance
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, monthStart, nextMonth).
		Order("date").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn chấm công tháng", err)
	}
	return rows, nil
}

// MarkHoliday ghi bản ghi Holiday cho mọi nhân viên active vào một ngày lễ;
// ngày đã có bản ghi thì giữ nguyên
func (s *AttendanceService) MarkHoliday(ctx context.Context, actorID *uint, holiday models.Holiday) error {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Where("status = ?", constants.EmployeeStatusActive).Find(&employees).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}

	day := dateOnly(holiday.Date)

	return s.recorder.WithinTransaction(ctx, actorID, func(cs *audit.Changeset) error {
		for _, employee := range employees {
			var existing models.Attendance
			err := cs.DB().Where("employee_id = ? AND date = ?", employee.ID, day).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			record := &models.Attendance{
				EmployeeID: employee.ID,
				Date:       day,
				LoginTime:  day,
				Status:     constants.AttendanceStatusHoliday,
			}
			if err := cs.Create(record); err != nil {
				return err
			}
		}
		return nil
	})
}
