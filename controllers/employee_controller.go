package controllers

import (
	"context"
	"errors"

	"hrm/constants"
	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services"
	"hrm/services/audit"
	"hrm/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// EmployeeController quản lý hồ sơ nhân viên và cấu trúc lương
type EmployeeController struct {
	DB            *gorm.DB
	Redis         *redis.Client
	Recorder      *audit.Recorder
	SearchService *services.SearchService
}

func NewEmployeeController(db *gorm.DB, redisCli *redis.Client, recorder *audit.Recorder) *EmployeeController {
	return &EmployeeController{
		DB:            db,
		Redis:         redisCli,
		Recorder:      recorder,
		SearchService: services.NewSearchService(db),
	}
}

func toEmployeeResponse(employee *models.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:                   employee.ID,
		Name:                 employee.Name,
		Email:                employee.Email,
		PhoneNumber:          employee.PhoneNumber,
		Role:                 employee.Role,
		Status:               employee.Status,
		Gender:               employee.Gender,
		DateOfBirth:          employee.DateOfBirth,
		Avatar:               employee.Avatar,
		Designation:          employee.Designation,
		JoinDate:             employee.JoinDate,
		DepartmentID:         employee.DepartmentID,
		ManagedDepartmentIDs: employee.ManagedDepartmentIDs,
		CreatedAt:            employee.CreatedAt,
		UpdatedAt:            employee.UpdatedAt,
	}
	if employee.Department != nil {
		resp.DepartmentName = employee.Department.Name
	}
	return resp
}

const employeeDirectoryCacheKey = "employees:directory"

func (ctrl *EmployeeController) invalidateDirectoryCache(ctx context.Context) {
	if ctrl.Redis == nil {
		return
	}
	_ = services.DeleteFromRedis(ctx, ctrl.Redis, employeeDirectoryCacheKey)
}

// GetEmployees lấy danh sách nhân viên, hỗ trợ tìm kiếm mờ theo tên
// không phân biệt dấu và filter theo phòng ban
func (ctrl *EmployeeController) GetEmployees(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), 20)
	search := c.Query("q")
	departmentStr := c.Query("departmentId")
	statusFilter := c.Query("status")

	if search != "" {
		employees, err := ctrl.SearchService.SearchEmployees(c.Request.Context(), search, limit)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		responses := make([]dto.EmployeeResponse, 0, len(employees))
		for i := range employees {
			responses = append(responses, toEmployeeResponse(&employees[i]))
		}
		response.SuccessWithTotal(c, responses, len(responses))
		return
	}

	tx := ctrl.DB.Model(&models.Employee{}).Preload("Department")
	if departmentStr != "" {
		tx = tx.Where("department_id = ?", parsePositiveInt(departmentStr, 0))
	}
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var employees []models.Employee
	if err := tx.Order("id").Offset((page - 1) * limit).Limit(limit).Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, toEmployeeResponse(&employees[i]))
	}
	response.SuccessWithPagination(c, responses, page, limit, int(total))
}

// GetEmployeeByID lấy chi tiết một nhân viên
func (ctrl *EmployeeController) GetEmployeeByID(c *gin.Context) {
	id := parsePositiveInt(c.Param("id"), 0)
	if id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var employee models.Employee
	if err := ctrl.DB.Preload("Department").Preload("SalaryStructure").First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toEmployeeResponse(&employee))
}

// CreateEmployee tạo nhân viên mới
func (ctrl *EmployeeController) CreateEmployee(c *gin.Context) {
	var request dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	employee := models.Employee{
		Name:         request.Name,
		Email:        request.Email,
		Password:     request.Password,
		PhoneNumber:  request.PhoneNumber,
		Role:         request.Role,
		Gender:       request.Gender,
		Designation:  request.Designation,
		DepartmentID: request.DepartmentID,
		Status:       constants.EmployeeStatusActive,
	}
	if request.DateOfBirth != "" {
		employee.DateOfBirth = request.DateOfBirth
	}

	if err := validator.ValidateEmployee(&employee); err != nil {
		handleServiceError(c, err)
		return
	}

	if request.DepartmentID != nil {
		var department models.Department
		if err := ctrl.DB.First(&department, *request.DepartmentID).Error; err != nil {
			response.BadRequest(c, "Phòng ban không tồn tại")
			return
		}
	}

	hashedPassword, err := services.HashPassword(request.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	employee.Password = hashedPassword

	actorID := middleware.ActorID(c)
	err = ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
		return cs.Create(&employee)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Conflict(c, "Email đã được sử dụng")
			return
		}
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateDirectoryCache(c.Request.Context())
	response.Success(c, toEmployeeResponse(&employee))
}

// UpdateEmployee cập nhật thông tin nhân viên
func (ctrl *EmployeeController) UpdateEmployee(c *gin.Context) {
	var request dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var employee models.Employee
	if err := ctrl.DB.First(&employee, request.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	before := employee
	if request.Name != "" {
		employee.Name = request.Name
	}
	if request.PhoneNumber != "" {
		employee.PhoneNumber = request.PhoneNumber
	}
	if request.Avatar != "" {
		employee.Avatar = request.Avatar
	}
	if request.DateOfBirth != "" {
		employee.DateOfBirth = request.DateOfBirth
	}
	if request.Gender != 0 {
		employee.Gender = request.Gender
	}
	if request.Designation != "" {
		employee.Designation = request.Designation
	}
	if request.DepartmentID != nil {
		var department models.Department
		if err := ctrl.DB.First(&department, *request.DepartmentID).Error; err != nil {
			response.BadRequest(c, "Phòng ban không tồn tại")
			return
		}
		employee.DepartmentID = request.DepartmentID
	}

	actorID := middleware.ActorID(c)
	err := ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
		return cs.Update(&before, &employee)
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateDirectoryCache(c.Request.Context())
	response.Success(c, toEmployeeResponse(&employee))
}

// ChangeEmployeeStatus đổi trạng thái Active/Inactive; nhân viên nghỉ việc
// chỉ đổi trạng thái, không bao giờ xóa để giữ lịch sử lương
func (ctrl *EmployeeController) ChangeEmployeeStatus(c *gin.Context) {
	var request dto.EmployeeStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var employee models.Employee
	if err := ctrl.DB.First(&employee, request.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if employee.Status == request.Status {
		response.Success(c, toEmployeeResponse(&employee))
		return
	}

	before := employee
	employee.Status = request.Status

	actorID := middleware.ActorID(c)
	err := ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
		return cs.Update(&before, &employee)
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateDirectoryCache(c.Request.Context())
	response.Success(c, toEmployeeResponse(&employee))
}

// UpsertSalaryStructure tạo hoặc cập nhật cấu trúc lương của nhân viên;
// mỗi nhân viên chỉ có một bản ghi hiện hành
func (ctrl *EmployeeController) UpsertSalaryStructure(c *gin.Context) {
	var request dto.SalaryStructureRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var employee models.Employee
	if err := ctrl.DB.First(&employee, request.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	structure := models.SalaryStructure{
		EmployeeID:    request.EmployeeID,
		BasicSalary:   request.BasicSalary,
		HRA:           request.HRA,
		Allowances:    request.Allowances,
		Deductions:    request.Deductions,
		ProvidentFund: request.ProvidentFund,
		Tax:           request.Tax,
	}
	if err := validator.ValidateSalaryStructure(&structure); err != nil {
		handleServiceError(c, err)
		return
	}

	actorID := middleware.ActorID(c)
	var existing models.SalaryStructure
	err := ctrl.DB.Where("employee_id = ?", request.EmployeeID).First(&existing).Error
	switch {
	case err == nil:
		before := existing
		existing.BasicSalary = request.BasicSalary
		existing.HRA = request.HRA
		existing.Allowances = request.Allowances
		existing.Deductions = request.Deductions
		existing.ProvidentFund = request.ProvidentFund
		existing.Tax = request.Tax
		err = ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
			return cs.Update(&before, &existing)
		})
		structure = existing
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
			return cs.Create(&structure)
		})
	default:
		response.ServerError(c)
		return
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toSalaryStructureResponse(&structure))
}

// GetSalaryStructure lấy cấu trúc lương hiện hành của một nhân viên
func (ctrl *EmployeeController) GetSalaryStructure(c *gin.Context) {
	employeeID := parsePositiveInt(c.Param("id"), 0)
	if employeeID == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var structure models.SalaryStructure
	if err := ctrl.DB.Where("employee_id = ?", employeeID).First(&structure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			handleServiceError(c, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Nhân viên chưa có cấu trúc lương", err))
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toSalaryStructureResponse(&structure))
}

// DeleteSalaryStructure xóa cấu trúc lương; từ chối khi nhân viên
// đã có lịch sử lương để không mồ côi dữ liệu tính lương
func (ctrl *EmployeeController) DeleteSalaryStructure(c *gin.Context) {
	employeeID := parsePositiveInt(c.Param("id"), 0)
	if employeeID == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var structure models.SalaryStructure
	if err := ctrl.DB.Where("employee_id = ?", employeeID).First(&structure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var payrollCount int64
	if err := ctrl.DB.Model(&models.PayrollRecord{}).Where("employee_id = ?", employeeID).Count(&payrollCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if payrollCount > 0 {
		response.Conflict(c, "Nhân viên đã có lịch sử lương, không thể xóa cấu trúc lương")
		return
	}

	actorID := middleware.ActorID(c)
	err := ctrl.Recorder.WithinTransaction(c.Request.Context(), actorID, func(cs *audit.Changeset) error {
		return cs.Delete(&structure)
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, nil)
}

func toSalaryStructureResponse(structure *models.SalaryStructure) dto.SalaryStructureResponse {
	return dto.SalaryStructureResponse{
		ID:            structure.ID,
		EmployeeID:    structure.EmployeeID,
		BasicSalary:   structure.BasicSalary,
		HRA:           structure.HRA,
		Allowances:    structure.Allowances,
		Deductions:    structure.Deductions,
		ProvidentFund: structure.ProvidentFund,
		Tax:           structure.Tax,
		GrossSalary:   structure.GrossSalary(),
		NetSalary:     structure.NetSalary(),
		UpdatedAt:     structure.UpdatedAt,
	}
}
