package controllers

import (
	"errors"
	"time"

	"hrm/dto"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services"
	"hrm/services/audit"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HolidayController quản lý ngày nghỉ lễ của công ty
type HolidayController struct {
	DB                *gorm.DB
	Recorder          *audit.Recorder
	AttendanceService *services.AttendanceService
}

func NewHolidayController(db *gorm.DB, recorder *audit.Recorder, attendanceService *services.AttendanceService) *HolidayController {
	return &HolidayController{DB: db, Recorder: recorder, AttendanceService: attendanceService}
}

// GetHolidays lấy danh sách ngày nghỉ lễ
func (ctrl *HolidayController) GetHolidays(c *gin.Context) {
	var holidays []models.Holiday
	if err := ctrl.DB.Order("date").Find(&holidays).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, holidays, len(holidays))
}

// CreateHoliday tạo ngày nghỉ lễ mới và đánh dấu chấm công Holiday
// cho mọi nhân viên active trong ngày đó
func (ctrl *HolidayController) CreateHoliday(c *gin.Context) {
	var request dto.HolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	date, err := time.Parse("02/01/2006", request.Date)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày không hợp lệ")
		return
	}

	holiday := models.Holiday{
		Name: request.Name,
		Date: date,
	}

	actorID := middleware.ActorID(c)
	err = ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
		return cs.Create(&holiday)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Conflict(c, "Ngày này đã là ngày nghỉ lễ")
			return
		}
		handleServiceError(c, err)
		return
	}

	if err := ctrl.AttendanceService.MarkHoliday(c.Request.Context(), actorID, holiday); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, holiday)
}
