package routes

import (
	"hrm/config"
	"hrm/controllers"
	middlewares "hrm/middleware"
	"hrm/services"
	"hrm/services/audit"
	"hrm/services/logger"
	"hrm/services/notification"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	recorder := audit.NewRecorder(db)
	notifier := notification.NewMelodyService(m)

	payrollService := services.NewPayrollService(services.PayrollServiceOptions{
		DB:       db,
		Recorder: recorder,
		Logger:   appLogger,
		Policy:   config.LoadPayrollPolicy(),
	})
	attendanceService := services.NewAttendanceService(services.AttendanceServiceOptions{
		DB:       db,
		Recorder: recorder,
		Logger:   appLogger,
	})
	leaveService := services.NewLeaveService(services.LeaveServiceOptions{
		DB:       db,
		Recorder: recorder,
		Logger:   appLogger,
	})
	payslipService := services.NewPayslipService(services.PayslipServiceOptions{
		DB:       db,
		Recorder: recorder,
		Renderer: services.NewCloudinaryRenderer(cld),
		Logger:   appLogger,
	})

	employeeController := controllers.NewEmployeeController(db, redisCli, recorder)
	departmentController := controllers.NewDepartmentController(db, recorder)
	attendanceController := controllers.NewAttendanceController(attendanceService, redisCli)
	leaveController := controllers.NewLeaveController(leaveService)
	payrollController := controllers.NewPayrollController(payrollService, redisCli, notifier)
	payslipController := controllers.NewPayslipController(payslipService)
	auditController := controllers.NewAuditController(recorder)
	reportController := controllers.NewReportController(payrollService)
	holidayController := controllers.NewHolidayController(db, recorder, attendanceService)
	documentController := controllers.NewDocumentController(db, recorder, cld)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/employees", middlewares.AuthMiddleware(1, 2), employeeController.GetEmployees)
	v1.POST("/employees", middlewares.AuthMiddleware(1, 2), employeeController.CreateEmployee)
	v1.GET("/employees/:id", middlewares.AuthMiddleware(), employeeController.GetEmployeeByID)
	v1.PUT("/employees", middlewares.AuthMiddleware(1, 2), employeeController.UpdateEmployee)
	v1.PUT("/employeeStatus", middlewares.AuthMiddleware(2), employeeController.ChangeEmployeeStatus)

	v1.GET("/salaryStructure/:id", middlewares.AuthMiddleware(1, 2), employeeController.GetSalaryStructure)
	v1.POST("/salaryStructure", middlewares.AuthMiddleware(1, 2), employeeController.UpsertSalaryStructure)
	v1.DELETE("/salaryStructure/:id", middlewares.AuthMiddleware(2), employeeController.DeleteSalaryStructure)

	v1.GET("/departments", middlewares.AuthMiddleware(), departmentController.GetDepartments)
	v1.POST("/departments", middlewares.AuthMiddleware(2), departmentController.CreateDepartment)
	v1.PUT("/departments", middlewares.AuthMiddleware(2), departmentController.UpdateDepartment)
	v1.DELETE("/departments/:id", middlewares.AuthMiddleware(2), departmentController.DeleteDepartment)

	v1.POST("/checkin", middlewares.AuthMiddleware(), attendanceController.CheckIn)
	v1.POST("/checkout", middlewares.AuthMiddleware(), attendanceController.CheckOut)
	v1.GET("/attendanceCalendar", middlewares.AuthMiddleware(), attendanceController.GetCalendar)

	v1.POST("/leave", middlewares.AuthMiddleware(), leaveController.RequestLeave)
	v1.PUT("/leave/:id/approve", middlewares.AuthMiddleware(1, 2), leaveController.ApproveLeave)
	v1.PUT("/leave/:id/reject", middlewares.AuthMiddleware(1, 2), leaveController.RejectLeave)
	v1.GET("/leaveHistory", middlewares.AuthMiddleware(), leaveController.GetLeaveHistory)

	v1.GET("/holidays", middlewares.AuthMiddleware(), holidayController.GetHolidays)
	v1.POST("/holidays", middlewares.AuthMiddleware(1, 2), holidayController.CreateHoliday)

	v1.POST("/payroll", middlewares.AuthMiddleware(1, 2), payrollController.GeneratePayroll)
	v1.PUT("/payrollUpdate", middlewares.AuthMiddleware(1, 2), payrollController.UpdatePayroll)
	v1.PUT("/payrollStatus", middlewares.AuthMiddleware(1, 2), payrollController.ChangePayrollStatus)
	v1.GET("/payroll/:id", middlewares.AuthMiddleware(1, 2), payrollController.GetPayrollDetail)
	v1.GET("/payroll", middlewares.AuthMiddleware(1, 2), payrollController.GetPayrollsByMonth)
	v1.GET("/salaryHistory", middlewares.AuthMiddleware(), payrollController.GetSalaryHistory)

	v1.POST("/payslip", middlewares.AuthMiddleware(1, 2), payslipController.GeneratePayslip)
	v1.GET("/payslip", middlewares.AuthMiddleware(), payslipController.GetPayslips)

	v1.GET("/auditLogs", middlewares.AuthMiddleware(1, 2), auditController.GetAuditLogs)

	v1.GET("/payrollReport", middlewares.AuthMiddleware(1, 2), reportController.ExportPayrollReport)

	v1.POST("/documents", middlewares.AuthMiddleware(1, 2), documentController.UploadDocument)
	v1.GET("/documents", middlewares.AuthMiddleware(), documentController.GetDocuments)
	v1.DELETE("/documents/:id", middlewares.AuthMiddleware(2), documentController.DeleteDocument)
}
