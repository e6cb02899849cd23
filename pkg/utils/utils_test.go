package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "10-01-2025", "2025-02-30", "2025/01/10", "2025-1-10"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDaysBetween(t *testing.T) {
	in, _ := ParseDate("2025-01-10")
	out, _ := ParseDate("2025-01-12")
	assert.Equal(t, 2, DaysBetween(in, out))
	assert.Equal(t, -2, DaysBetween(out, in))
	assert.Equal(t, 0, DaysBetween(in, in))

	// crosses a leap day
	a, _ := ParseDate("2024-02-28")
	b, _ := ParseDate("2024-03-01")
	assert.Equal(t, 2, DaysBetween(a, b))

	far, _ := ParseDate("2400-01-10")
	assert.Equal(t, 136965, DaysBetween(in, far))
	assert.Equal(t, -136965, DaysBetween(far, in))

	first, _ := ParseDate("0001-01-01")
	last, _ := ParseDate("9999-12-31")
	assert.Equal(t, 3652058, DaysBetween(first, last))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, ok := ParseID(bad)
		assert.False(t, ok, bad)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

type sampleRequest struct {
	Name   string `json:"name" validate:"required"`
	Method string `json:"method" validate:"required,oneof=Cash Card Online"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sampleRequest{Name: "Ali", Method: "Cash"}))

	errs := ValidateStruct(sampleRequest{Method: "Cheque"})
	assert.Equal(t, "This field is required", errs["Name"])
	assert.Equal(t, "Must be one of: Cash, Card, Online", errs["Method"])
	assert.Equal(t, "Method: Must be one of: Cash, Card, Online; Name: This field is required", FormatValidationErrors(errs))
}
