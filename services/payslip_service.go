package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/audit"
	"hrm/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRenderer nhận nội dung đã dựng và trả về URL của artifact
type DocumentRenderer interface {
	Render(ctx context.Context, fileName string, content []byte) (string, error)
}

// CloudinaryRenderer upload artifact lên Cloudinary dạng raw file
type CloudinaryRenderer struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryRenderer(cld *cloudinary.Cloudinary) *CloudinaryRenderer {
	return &CloudinaryRenderer{cld: cld}
}

func (r *CloudinaryRenderer) Render(ctx context.Context, fileName string, content []byte) (string, error) {
	resp, err := r.cld.Upload.Upload(ctx, bytes.NewReader(content), uploader.UploadParams{
		Folder:       "payslips",
		PublicID:     fileName,
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// PayslipService render bảng lương thành phiếu lương; phiếu lương là
// artifact dẫn xuất, generate lại được bất cứ lúc nào và không bao giờ
// là nguồn sự thật cho số tiền
type PayslipService struct {
	db       *gorm.DB
	recorder *audit.Recorder
	renderer DocumentRenderer
	logger   logger.Logger
}

type PayslipServiceOptions struct {
	DB       *gorm.DB
	Recorder *audit.Recorder
	Renderer DocumentRenderer
	Logger   logger.Logger
}

func NewPayslipService(opts PayslipServiceOptions) *PayslipService {
	return &PayslipService{
		db:       opts.DB,
		recorder: opts.Recorder,
		renderer: opts.Renderer,
		logger:   opts.Logger,
	}
}

// Generate render và lưu phiếu lương cho một payroll record
func (s *PayslipService) Generate(ctx context.Context, actorID *uint, payrollID uint) (*models.Payslip, error) {
	var record models.PayrollRecord
	if err := s.db.WithContext(ctx).Preload("Employee").First(&record, payrollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy bảng lương", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bảng lương", err)
	}

	reference := uuid.NewString()
	fileName := fmt.Sprintf("payslip-%d-%s-%s", record.EmployeeID, record.PayrollMonth.Format("2006-01"), reference[:8])

	content := buildPayslipHTML(&record)
	fileURL, err := s.renderer.Render(ctx, fileName, content)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi render phiếu lương", err)
	}

	payslip := &models.Payslip{
		PayrollRecordID: record.ID,
		Reference:       reference,
		FileName:        fileName + ".html",
		FileURL:         fileURL,
	}

	err = s.recorder.WithinTransaction(ctx, actorID, func(cs *audit.Changeset) error {
		return cs.Create(payslip)
	})
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi lưu phiếu lương", err)
	}

	s.logger.Info("Đã tạo phiếu lương %s cho bảng lương %d", reference, record.ID)
	return payslip, nil
}

// ListByPayroll trả về các phiếu lương đã generate của một bảng lương
func (s *PayslipService) ListByPayroll(ctx context.Context, payrollID uint) ([]models.Payslip, error) {
	var payslips []models.Payslip
	err := s.db.WithContext(ctx).
		Where("payroll_record_id = ?", payrollID).
		Order("generated_at DESC").
		Find(&payslips).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn phiếu lương", err)
	}
	return payslips, nil
}

func buildPayslipHTML(record *models.PayrollRecord) []byte {
	employeeName := ""
	if record.Employee != nil {
		employeeName = record.Employee.Name
	}
	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Phiếu lương %s</title>
	</head>
	<body>
		<h2>Phiếu lương tháng %s</h2>
		<p>Nhân viên: <strong>%s</strong> (mã %d)</p>
		<table border="1" cellpadding="6">
			<tr><td>Số ngày công</td><td>%.1f / %d</td></tr>
			<tr><td>Lương cơ bản theo công</td><td>%s</td></tr>
			<tr><td>Tổng thu nhập</td><td>%s</td></tr>
			<tr><td>Thưởng</td><td>%s</td></tr>
			<tr><td>Tổng khấu trừ</td><td>%s</td></tr>
			<tr><td><strong>Thực lãnh</strong></td><td><strong>%s</strong></td></tr>
		</table>
		<p>Ngày chi trả: %s — Trạng thái: %s</p>
	</body>
	</html>`,
		record.PayrollMonth.Format("01/2006"),
		record.PayrollMonth.Format("01/2006"),
		employeeName,
		record.EmployeeID,
		record.PaidDays,
		record.TotalDays,
		record.AdjustedBasic.StringFixed(2),
		record.GrossSalary.StringFixed(2),
		record.Bonus.StringFixed(2),
		record.TotalDeductions.StringFixed(2),
		record.NetPay.StringFixed(2),
		record.PaymentDate.Format("02/01/2006"),
		record.PaymentStatus,
	)
	return []byte(body)
}
