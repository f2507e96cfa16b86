package controllers

import (
	"errors"

	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services/audit"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DocumentController upload và tra cứu tài liệu nhân sự
// (hợp đồng, bằng cấp, giấy tờ tùy thân)
type DocumentController struct {
	DB         *gorm.DB
	Recorder   *audit.Recorder
	Cloudinary *cloudinary.Cloudinary
}

func NewDocumentController(db *gorm.DB, recorder *audit.Recorder, cld *cloudinary.Cloudinary) *DocumentController {
	return &DocumentController{DB: db, Recorder: recorder, Cloudinary: cld}
}

// UploadDocument upload một tài liệu cho nhân viên qua multipart form
func (ctrl *DocumentController) UploadDocument(c *gin.Context) {
	employeeID := parsePositiveInt(c.PostForm("employeeId"), 0)
	if employeeID == 0 {
		response.BadRequest(c, "Thiếu employeeId")
		return
	}
	title := c.PostForm("title")
	if title == "" {
		response.BadRequest(c, "Thiếu tiêu đề tài liệu")
		return
	}

	var employee models.Employee
	if err := ctrl.DB.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	resp, err := ctrl.Cloudinary.Upload.Upload(c.Request.Context(), src, uploader.UploadParams{Folder: "documents"})
	if err != nil {
		response.ServerError(c)
		return
	}

	document := models.EmployeeDocument{
		EmployeeID: uint(employeeID),
		Title:      title,
		FileURL:    resp.SecureURL,
	}

	actorID := middleware.ActorID(c)
	err = ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
		return cs.Create(&document)
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, document)
}

// GetDocuments lấy tài liệu của một nhân viên
func (ctrl *DocumentController) GetDocuments(c *gin.Context) {
	employeeID := parsePositiveInt(c.Query("employeeId"), 0)
	if employeeID == 0 {
		response.BadRequest(c, "Thiếu employeeId")
		return
	}

	var documents []models.EmployeeDocument
	if err := ctrl.DB.Where("employee_id = ?", employeeID).Order("uploaded_at DESC").Find(&documents).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, documents, len(documents))
}

// DeleteDocument xóa metadata tài liệu
func (ctrl *DocumentController) DeleteDocument(c *gin.Context) {
	id := parsePositiveInt(c.Param("id"), 0)
	if id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var document models.EmployeeDocument
	if err := ctrl.DB.First(&document, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	actorID := middleware.ActorID(c)
	err := ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
		return cs.Delete(&document)
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, nil)
}
