package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"user+tag@example.co.uk",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("550e8400-e29b-41d4-a716-446655440000"))
	assert.True(t, IsValidUUID("550E8400-E29B-41D4-A716-446655440000"))
	assert.False(t, IsValidUUID("550e8400-e29b-41d4-a716"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-03-09")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, 9, date.Day())

	_, ok = IsValidDate("09-03-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	assert.True(t, IsValidTimeOfDay("00:00"))
	assert.True(t, IsValidTimeOfDay("09:30"))
	assert.True(t, IsValidTimeOfDay("23:59"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("9:30"))
	assert.False(t, IsValidTimeOfDay("09:60"))
	assert.False(t, IsValidTimeOfDay(""))
}

func TestParseTimeOfDay(t *testing.T) {
	hour, minute, ok := ParseTimeOfDay("14:45")
	assert.True(t, ok)
	assert.Equal(t, 14, hour)
	assert.Equal(t, 45, minute)

	_, _, ok = ParseTimeOfDay("25:00")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"Employee", "Manager", "Admin"}
	assert.True(t, IsInSlice("Manager", roles))
	assert.False(t, IsInSlice("manager", roles))
	assert.False(t, IsInSlice("", roles))
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2026-03-09T10:30:00Z")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2026-03-09T10:30:00+07:00")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2026-03-09")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "role", Message: "invalid role"},
	}

	assert.Equal(t, "email: is required; role: invalid role", errs.Error())
	assert.Equal(t, map[string]string{
		"email": "is required",
		"role":  "invalid role",
	}, errs.ToMap())
}
