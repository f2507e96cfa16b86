package controllers

import (
	"context"
	"errors"
	"os"
	"strings"

	"hrm/config"
	"hrm/dto"
	"hrm/models"
	"hrm/response"
	"hrm/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// Login xác thực nhân viên bằng email hoặc số điện thoại
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var employee models.Employee
	var err error
	if strings.Contains(input.Identifier, "@") {
		employee, err = services.GetEmployeeByEmail(input.Identifier)
	} else {
		employee, err = services.GetEmployeeByPhoneNumber(input.Identifier)
	}
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(input.Password)); err != nil {
		response.Unauthorized(c)
		return
	}

	if !employee.IsActive() {
		response.Forbidden(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserId: employee.ID,
		Role:   employee.Role,
	}, 60*24, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		Employee:    toEmployeeResponse(&employee),
	})
}

// AuthGoogle đăng nhập bằng Google ID token; email phải thuộc một
// nhân viên đã tồn tại, không tự tạo tài khoản mới
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payload, err := verifyGoogleIDToken(input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		response.Unauthorized(c)
		return
	}

	var employee models.Employee
	if err := config.DB.Where("email = ?", email).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if !employee.IsActive() {
		response.Forbidden(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserId: employee.ID,
		Role:   employee.Role,
	}, 60*24, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		Employee:    toEmployeeResponse(&employee),
	})
}

// GetProfile trả về thông tin nhân viên đang đăng nhập
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var employee models.Employee
	if err := config.DB.Preload("Department").First(&employee, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toEmployeeResponse(&employee))
}

func verifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenID, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
