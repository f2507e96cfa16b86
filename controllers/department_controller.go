package controllers

import (
	"errors"

	"hrm/dto"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services/audit"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DepartmentController quản lý phòng ban
type DepartmentController struct {
	DB       *gorm.DB
	Recorder *audit.Recorder
}

func NewDepartmentController(db *gorm.DB, recorder *audit.Recorder) *DepartmentController {
	return &DepartmentController{DB: db, Recorder: recorder}
}

// GetDepartments lấy danh sách phòng ban kèm số nhân viên
func (ctrl *DepartmentController) GetDepartments(c *gin.Context) {
	var departments []models.Department
	if err := ctrl.DB.Order("id").Find(&departments).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for i := range departments {
		var count int64
		if err := ctrl.DB.Model(&models.Employee{}).Where("department_id = ?", departments[i].ID).Count(&count).Error; err != nil {
			response.ServerError(c)
			return
		}
		responses = append(responses, dto.DepartmentResponse{
			ID:            departments[i].ID,
			Name:          departments[i].Name,
			Code:          departments[i].Code,
			Description:   departments[i].Description,
			EmployeeCount: int(count),
			CreatedAt:     departments[i].CreatedAt,
		})
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

// CreateDepartment tạo phòng ban mới
func (ctrl *DepartmentController) CreateDepartment(c *gin.Context) {
	var request dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	department := models.Department{
		Name:        request.Name,
		Code:        request.Code,
		Description: request.Description,
	}

	actorID := middleware.ActorID(c)
	err := ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
		return cs.Create(&department)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Conflict(c, "Tên hoặc mã phòng ban đã tồn tại")
			return
		}
		handleServiceError(c, err)
		return
	}

	response.Success(c, department)
}

// UpdateDepartment cập nhật tên/mô tả phòng ban
func (ctrl *DepartmentController) UpdateDepartment(c *gin.Context) {
	var request dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var department models.Department
	if err := ctrl.DB.First(&department, request.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	before := department
	if request.Name != "" {
		department.Name = request.Name
	}
	if request.Description != "" {
		department.Description = request.Description
	}

	actorID := middleware.ActorID(c)
	err := ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
		return cs.Update(&before, &department)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Conflict(c, "Tên phòng ban đã tồn tại")
			return
		}
		handleServiceError(c, err)
		return
	}

	response.Success(c, department)
}

// DeleteDepartment xóa phòng ban; chỉ cho phép khi không còn nhân viên nào
func (ctrl *DepartmentController) DeleteDepartment(c *gin.Context) {
	id := parsePositiveInt(c.Param("id"), 0)
	if id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var department models.Department
	if err := ctrl.DB.First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var count int64
	if err := ctrl.DB.Model(&models.Employee{}).Where("department_id = ?", id).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Phòng ban còn nhân viên, không thể xóa")
		return
	}

	actorID := middleware.ActorID(c)
	err := ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
		return cs.Delete(&department)
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, nil)
}
