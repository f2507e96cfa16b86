package main

import (
	"log"
	"net/http"
	"os"

	"hrm/config"
	"hrm/jobs"
	"hrm/models"
	"hrm/routes"
	"hrm/services"
	"hrm/services/audit"
	"hrm/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Department{},
		&models.Employee{},
		&models.SalaryStructure{},
		&models.Attendance{},
		&models.LeaveRequest{},
		&models.Holiday{},
		&models.PayrollRecord{},
		&models.Payslip{},
		&models.EmployeeDocument{},
		&models.AuditLog{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	payrollService := services.NewPayrollService(services.PayrollServiceOptions{
		DB:       config.DB,
		Recorder: audit.NewRecorder(config.DB),
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Policy:   config.LoadPayrollPolicy(),
	})
	payrollAdapter := services.NewPayrollServiceAdapter(payrollService)
	jobs.SetPayrollRunner(payrollAdapter)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
