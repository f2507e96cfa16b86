package controllers

import (
	"time"

	"hrm/dto"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// AttendanceController xử lý điểm danh và lịch chấm công
type AttendanceController struct {
	Service *services.AttendanceService
	Redis   *redis.Client
}

func NewAttendanceController(service *services.AttendanceService, redisCli *redis.Client) *AttendanceController {
	return &AttendanceController{Service: service, Redis: redisCli}
}

func toAttendanceResponse(record *models.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		Date:         record.Date.Format("02/01/2006"),
		LoginTime:    record.LoginTime,
		LogoutTime:   record.LogoutTime,
		WorkingHours: record.WorkingHours,
		Status:       record.Status,
	}
}

// CheckIn điểm danh đầu ngày cho nhân viên
func (ctrl *AttendanceController) CheckIn(c *gin.Context) {
	var request dto.CheckInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	actorID := middleware.ActorID(c)
	record, err := ctrl.Service.CheckIn(c.Request.Context(), actorID, request.EmployeeID, time.Now())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateCalendarCache(c, request.EmployeeID, record.Date)
	response.Success(c, toAttendanceResponse(record))
}

// CheckOut chốt giờ ra cuối ngày
func (ctrl *AttendanceController) CheckOut(c *gin.Context) {
	var request dto.CheckOutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	actorID := middleware.ActorID(c)
	record, err := ctrl.Service.CheckOut(c.Request.Context(), actorID, request.EmployeeID, time.Now())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateCalendarCache(c, request.EmployeeID, record.Date)
	response.Success(c, toAttendanceResponse(record))
}

// GetCalendar lấy lịch chấm công của nhân viên theo tháng mm/yyyy,
// có cache Redis
func (ctrl *AttendanceController) GetCalendar(c *gin.Context) {
	employeeID := parsePositiveInt(c.Query("employeeId"), 0)
	if employeeID == 0 {
		response.BadRequest(c, "Thiếu employeeId")
		return
	}

	monthStr := c.Query("month")
	month, err := time.Parse("01/2006", monthStr)
	if err != nil {
		response.BadRequest(c, "Định dạng tháng không hợp lệ, dùng mm/yyyy")
		return
	}

	cacheKey := services.CalendarCacheKey(uint(employeeID), month)
	if ctrl.Redis != nil {
		var cached []dto.AttendanceResponse
		if err := services.GetFromRedis(c.Request.Context(), ctrl.Redis, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithTotal(c, cached, len(cached))
			return
		}
	}

	rows, err := ctrl.Service.MonthAttendance(c.Request.Context(), uint(employeeID), month)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]dto.AttendanceResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, toAttendanceResponse(&rows[i]))
	}

	if ctrl.Redis != nil && len(responses) > 0 {
		_ = services.SetToRedis(c.Request.Context(), ctrl.Redis, cacheKey, responses, services.CalendarCacheTTL)
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

func (ctrl *AttendanceController) invalidateCalendarCache(c *gin.Context, employeeID uint, day time.Time) {
	if ctrl.Redis == nil {
		return
	}
	_ = services.DeleteFromRedis(c.Request.Context(), ctrl.Redis, services.CalendarCacheKey(employeeID, day))
}
