package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// PayrollAutoRunner định nghĩa interface cho việc tự động chạy lương tháng
type PayrollAutoRunner interface {
	RunMonthlyPayroll(m *melody.Melody, month time.Time) error
}

var payrollAutoRunner PayrollAutoRunner

// SetPayrollRunner thiết lập implementation cho PayrollAutoRunner
func SetPayrollRunner(runner PayrollAutoRunner) {
	payrollAutoRunner = runner
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 2h sáng ngày 1 hàng tháng: tính lương tháng trước
	// cho mọi nhân viên chưa có bảng lương
	_, err := c.AddFunc("0 2 1 * *", func() {
		now := time.Now()
		previousMonth := now.AddDate(0, -1, 0)
		log.Printf("Đang chạy tính lương tự động cho tháng %s lúc: %v", previousMonth.Format("01/2006"), now)
		if payrollAutoRunner == nil {
			log.Printf("Lỗi: PayrollAutoRunner chưa được thiết lập")
			return
		}
		if err := payrollAutoRunner.RunMonthlyPayroll(m, previousMonth); err != nil {
			log.Printf("Lỗi khi tính lương tự động: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
