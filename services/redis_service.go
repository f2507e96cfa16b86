package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL cache cho các danh sách đọc nhiều
const (
	DirectoryCacheTTL = 10 * time.Minute
	CalendarCacheTTL  = 5 * time.Minute
	PayrollCacheTTL   = 10 * time.Minute
)

// CalendarCacheKey tạo key cache lịch chấm công theo tháng
func CalendarCacheKey(employeeID uint, month time.Time) string {
	return fmt.Sprintf("attendance:calendar:%d:%s", employeeID, month.Format("2006-01"))
}

// PayrollCacheKey tạo key cache lịch sử lương của nhân viên
func PayrollCacheKey(employeeID uint) string {
	return fmt.Sprintf("payroll:history:%d", employeeID)
}

// Hàm lấy data từ Redis
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	// Parse JSON thành object
	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// Hàm xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}
