package controllers

import (
	"strconv"

	"hrm/errors"
	"hrm/response"
	"hrm/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError map AppError từ service sang HTTP response
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		utils.LogError("Lỗi không xác định: %v", err)
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeNotFound, errors.ErrCodeEmployeeNotFound, errors.ErrCodeDBNotFound:
		response.NotFound(c)
	case errors.ErrCodeConflict, errors.ErrCodeDuplicateCheckIn, errors.ErrCodeDuplicateCheckOut,
		errors.ErrCodePayrollImmutable, errors.ErrCodeEmployeeExists, errors.ErrCodeDBDuplicate:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidAmount, errors.ErrCodeInvalidMonth, errors.ErrCodeNegativeNetPay,
		errors.ErrCodeInvalidEmail, errors.ErrCodeInvalidPhone, errors.ErrCodeInvalidRole:
		response.ValidationError(c, appErr.Message)
	case errors.ErrCodeInvalidOperation:
		response.BadRequest(c, appErr.Message)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken,
		errors.ErrCodeInvalidPassword:
		response.Unauthorized(c)
	default:
		utils.LogError("Lỗi service [%s]: %v", appErr.Code, err)
		response.ServerError(c)
	}
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
