package models

import (
	"testing"

	"hrm/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollStateTransitions(t *testing.T) {
	record := &PayrollRecord{PaymentStatus: constants.PaymentStatusPending}

	// Pending không được chi trả trực tiếp
	state := GetPayrollState(record.PaymentStatus)
	require.Error(t, state.Pay(record))
	assert.Equal(t, constants.PaymentStatusPending, record.PaymentStatus)

	require.NoError(t, state.Process(record))
	assert.Equal(t, constants.PaymentStatusProcessed, record.PaymentStatus)

	state = GetPayrollState(record.PaymentStatus)
	require.Error(t, state.Process(record))
	require.NoError(t, state.Pay(record))
	assert.Equal(t, constants.PaymentStatusPaid, record.PaymentStatus)

	// Paid là trạng thái cuối
	state = GetPayrollState(record.PaymentStatus)
	require.Error(t, state.Process(record))
	require.Error(t, state.Pay(record))
	assert.Equal(t, constants.PaymentStatusPaid, record.PaymentStatus)
}
