package validator

import (
	"testing"
	"time"

	"hrm/errors"
	"hrm/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmployee() *models.Employee {
	return &models.Employee{
		Name:        "Nguyễn Văn An",
		Email:       "an.nguyen@example.com",
		Password:    "secret123",
		PhoneNumber: "0901234567",
		Role:        1,
	}
}

func TestValidateEmployee(t *testing.T) {
	require.NoError(t, ValidateEmployee(validEmployee()))

	missing := validEmployee()
	missing.Email = ""
	err := ValidateEmployee(missing)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))

	badEmail := validEmployee()
	badEmail.Email = "not-an-email"
	err = ValidateEmployee(badEmail)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidEmail))

	shortPassword := validEmployee()
	shortPassword.Password = "abc"
	err = ValidateEmployee(shortPassword)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	badPhone := validEmployee()
	badPhone.PhoneNumber = "12345"
	err = ValidateEmployee(badPhone)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPhone))

	badRole := validEmployee()
	badRole.Role = 5
	err = ValidateEmployee(badRole)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRole))
}

func TestValidateSalaryStructure(t *testing.T) {
	structure := &models.SalaryStructure{
		EmployeeID:    1,
		BasicSalary:   decimal.NewFromInt(80000),
		HRA:           decimal.NewFromInt(16000),
		Allowances:    decimal.NewFromInt(8000),
		Deductions:    decimal.NewFromInt(2000),
		ProvidentFund: decimal.NewFromInt(9600),
		Tax:           decimal.NewFromInt(12000),
	}
	require.NoError(t, ValidateSalaryStructure(structure))

	structure.Tax = decimal.NewFromInt(-1)
	err := ValidateSalaryStructure(structure)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidAmount))

	structure.Tax = decimal.Zero
	structure.EmployeeID = 0
	err = ValidateSalaryStructure(structure)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
}

func TestValidateDateRange(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ValidateDateRange(from, from))
	require.NoError(t, ValidateDateRange(from, from.AddDate(0, 0, 3)))

	err := ValidateDateRange(from, from.AddDate(0, 0, -1))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	err = ValidateDateRange(time.Time{}, from)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
}
