package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateBookingCode()
		require.NoError(t, err)
		assert.True(t, IsValidBookingCodeFormat(code), "bad code %q", code)
		seen[code] = true
	}
	// 200 draws from a 36^9 space should never collide.
	assert.Len(t, seen, 200)
}

func TestNormalizeBookingCode(t *testing.T) {
	assert.Equal(t, "BKX7R2MA9Q", NormalizeBookingCode("  bkx7r2ma9q "))
}

func TestIsValidBookingCodeFormat(t *testing.T) {
	assert.True(t, IsValidBookingCodeFormat("B123456789"))
	assert.True(t, IsValidBookingCodeFormat("BABCDEF123"))
	assert.False(t, IsValidBookingCodeFormat(""))
	assert.False(t, IsValidBookingCodeFormat("X123456789"))
	assert.False(t, IsValidBookingCodeFormat("B12345678"))   // too short
	assert.False(t, IsValidBookingCodeFormat("B1234567890")) // too long
	assert.False(t, IsValidBookingCodeFormat("Babcdefghi"))  // lowercase
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 64) // hex doubles the byte length

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestSendCustomerSMSRejectsLongBody(t *testing.T) {
	assert.NoError(t, SendCustomerSMS("+27 82 000 1111", "see you at 14:00"))
	assert.Error(t, SendCustomerSMS("+27 82 000 1111", strings.Repeat("x", 161)))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "n*****a@e******.com", MaskEmail("nomvula@example.com"))
	assert.Equal(t, "a*@e******.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "invalid", MaskEmail("invalid"))
}
