package services

import (
	"errors"
	"fmt"
	"time"

	"hrm/config"
	"hrm/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GetEmployeeByEmail(email string) (models.Employee, error) {
	var employee models.Employee
	result := config.DB.Where("email = ?", email).First(&employee)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return employee, fmt.Errorf("không tìm thấy nhân viên với email %s", email)
	}

	if result.Error != nil {
		return employee, result.Error
	}

	return employee, nil
}

func GetEmployeeByPhoneNumber(phoneNumber string) (models.Employee, error) {
	var employee models.Employee
	result := config.DB.Where("phone_number = ?", phoneNumber).First(&employee)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return employee, fmt.Errorf("không tìm thấy nhân viên với số điện thoại %s", phoneNumber)
	}

	if result.Error != nil {
		return employee, result.Error
	}

	return employee, nil
}
