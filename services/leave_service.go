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

// LeaveService quản lý đơn nghỉ phép; duyệt đơn sẽ ghi chấm công
// Leave cho cả khoảng ngày trong cùng một commit
type LeaveService struct {
	db       *gorm.DB
	recorder *audit.Recorder
	logger   logger.Logger
}

type LeaveServiceOptions struct {
	DB       *gorm.DB
	Recorder *audit.Recorder
	Logger   logger.Logger
}

func NewLeaveService(opts LeaveServiceOptions) *LeaveService {
	return &LeaveService{
		db:       opts.DB,
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}
}

// RequestLeave tạo đơn nghỉ phép trạng thái Pending
func (s *LeaveService) RequestLeave(ctx context.Context, actorID *uint, employeeID uint, from, to time.Time, reason string) (*models.LeaveRequest, error) {
	fromDay := dateOnly(from)
	toDay := dateOnly(to)

	if toDay.Before(fromDay) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Ngày kết thúc phải không trước ngày bắt đầu", nil)
	}

	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}

	request := &models.LeaveRequest{
		EmployeeID: employeeID,
		FromDate:   fromDay,
		ToDate:     toDay,
		Reason:     reason,
		Status:     constants.LeaveStatusPending,
	}

	err := s.recorder.WithinTransaction(ctx, actorID, func(cs *audit.Changeset) error {
		return cs.Create(request)
	})
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi lưu đơn nghỉ phép", err)
	}

	return request, nil
}

// ApproveLeave duyệt đơn và ghi chấm công Leave cho từng ngày trong
// khoảng chưa có bản ghi; cập nhật đơn và chấm công chung một transaction
func (s *LeaveService) ApproveLeave(ctx context.Context, actorID *uint, requestID uint) (*models.LeaveRequest, error) {
	request, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	before := *request
	request.Status = constants.LeaveStatusApproved
	request.ApprovedBy = actorID

	err = s.recorder.WithinTransaction(ctx, actorID, func(cs *audit.Changeset) error {
		if err := cs.Update(&before, request); err != nil {
			return err
		}
		for day := request.FromDate; !day.After(request.ToDate); day = day.AddDate(0, 0, 1) {
			var existing models.Attendance
			err := cs.DB().Where("employee_id = ? AND date = ?", request.EmployeeID, day).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			record := &models.Attendance{
				EmployeeID: request.EmployeeID,
				Date:       day,
				LoginTime:  day,
				Status:     constants.AttendanceStatusLeave,
			}
			if err := cs.Create(record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi duyệt đơn nghỉ phép", err)
	}

	return request, nil
}

// RejectLeave từ chối đơn đang chờ duyệt
func (s *LeaveService) RejectLeave(ctx context.Context, actorID *uint, requestID uint) (*models.LeaveRequest, error) {
	request, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	before := *request
	request.Status = constants.LeaveStatusRejected
	request.ApprovedBy = actorID

	err = s.recorder.WithinTransaction(ctx, actorID, func(cs *audit.Changeset) error {
		return cs.Update(&before, request)
	})
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi từ chối đơn nghỉ phép", err)
	}

	return request, nil
}

// ListByEmployee trả về các đơn nghỉ phép của một nhân viên
func (s *LeaveService) ListByEmployee(ctx context.Context, employeeID uint) ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn đơn nghỉ phép", err)
	}
	return requests, nil
}

func (s *LeaveService) pendingRequest(ctx context.Context, requestID uint) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	if err := s.db.WithContext(ctx).First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy đơn nghỉ phép", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn đơn nghỉ phép", err)
	}
	if request.Status != constants.LeaveStatusPending {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, "Đơn nghỉ phép đã được xử lý", nil)
	}
	return &request, nil
}
