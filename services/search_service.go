package services

import (
	"context"
	"sort"
	"strings"

	apperrors "hrm/errors"
	"hrm/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// SearchService tìm nhân viên theo tên/email/chức danh,
// không phân biệt dấu tiếng Việt
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

type scoredEmployee struct {
	employee models.Employee
	score    float64
}

// SearchEmployees trả về nhân viên xếp theo độ khớp với query
func (s *SearchService) SearchEmployees(ctx context.Context, query string, limit int) ([]models.Employee, error) {
	if limit <= 0 {
		limit = 20
	}

	var employees []models.Employee
	if err := s.db.WithContext(ctx).Preload("Department").Find(&employees).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}

	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		if len(employees) > limit {
			employees = employees[:limit]
		}
		return employees, nil
	}

	names := make([]string, 0, len(employees))
	for _, employee := range employees {
		names = append(names, normalizeInput(employee.Name))
	}
	matcher := createMatcher(names)
	closest := matcher.Closest(normalizedQuery)

	scored := make([]scoredEmployee, 0, len(employees))
	for _, employee := range employees {
		name := normalizeInput(employee.Name)
		email := normalizeInput(employee.Email)
		designation := normalizeInput(employee.Designation)

		score := calculateSimilarity(normalizedQuery, name)
		if strings.Contains(name, normalizedQuery) || strings.Contains(email, normalizedQuery) {
			score += 1.0
		}
		if strings.Contains(designation, normalizedQuery) {
			score += 0.5
		}
		if closest != "" && name == closest {
			score += 0.5
		}

		if score > 0.3 {
			scored = append(scored, scoredEmployee{employee: employee, score: score})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]models.Employee, 0, limit)
	for i, item := range scored {
		if i >= limit {
			break
		}
		result = append(result, item.employee)
	}
	return result, nil
}
