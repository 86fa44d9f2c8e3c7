package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClockTime(t *testing.T) {
	assert.NoError(t, ValidateClockTime("startTime", "06:00"))
	assert.NoError(t, ValidateClockTime("startTime", "23:59"))

	assert.Error(t, ValidateClockTime("startTime", ""))
	assert.Error(t, ValidateClockTime("startTime", "6am"))
	assert.Error(t, ValidateClockTime("startTime", "24:00"))
	assert.Error(t, ValidateClockTime("startTime", "06:00:00"))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("date", "2026-08-30"))

	assert.Error(t, ValidateDate("date", ""))
	assert.Error(t, ValidateDate("date", "30.08.2026"))
	assert.Error(t, ValidateDate("date", "2026-13-01"))
}
