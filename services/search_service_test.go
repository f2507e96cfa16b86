package services

import (
	"context"
	"testing"

	"hrm/constants"
	"hrm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSearchEmployees(t *testing.T, db *gorm.DB) {
	t.Helper()
	employees := []models.Employee{
		{Name: "Nguyễn Văn An", Email: "an@example.com", Password: "x", PhoneNumber: "0901111111", Designation: "Kỹ sư phần mềm", Status: constants.EmployeeStatusActive},
		{Name: "Trần Thị Bình", Email: "binh@example.com", Password: "x", PhoneNumber: "0902222222", Designation: "Kế toán", Status: constants.EmployeeStatusActive},
		{Name: "Lê Hoàng Cường", Email: "cuong@example.com", Password: "x", PhoneNumber: "0903333333", Designation: "Kỹ sư phần mềm", Status: constants.EmployeeStatusActive},
	}
	for i := range employees {
		require.NoError(t, db.Create(&employees[i]).Error)
	}
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "nguyen van an", normalizeInput("  Nguyễn Văn An "))
	assert.Equal(t, "ke toan", normalizeInput("Kế Toán"))
	assert.Equal(t, "", normalizeInput("   "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, calculateSimilarity("an", "an"), 0.001)
	assert.InDelta(t, 1.0, calculateSimilarity("", ""), 0.001)
	assert.Less(t, calculateSimilarity("an", "cuong"), 0.5)
}

func TestSearchEmployeesAccentInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedSearchEmployees(t, db)
	svc := NewSearchService(db)

	// Query không dấu vẫn khớp tên có dấu
	results, err := svc.SearchEmployees(context.Background(), "nguyen van an", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Nguyễn Văn An", results[0].Name)
}

func TestSearchEmployeesByDesignation(t *testing.T) {
	db := setupTestDB(t)
	seedSearchEmployees(t, db)
	svc := NewSearchService(db)

	results, err := svc.SearchEmployees(context.Background(), "ky su", 10)
	require.NoError(t, err)
	names := make([]string, 0, len(results))
	for _, employee := range results {
		names = append(names, employee.Name)
	}
	// Cả hai kỹ sư đều phải có mặt trong kết quả
	assert.Contains(t, names, "Nguyễn Văn An")
	assert.Contains(t, names, "Lê Hoàng Cường")
}

func TestSearchEmployeesEmptyQueryReturnsAll(t *testing.T) {
	db := setupTestDB(t)
	seedSearchEmployees(t, db)
	svc := NewSearchService(db)

	results, err := svc.SearchEmployees(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
