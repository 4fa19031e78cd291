package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

// Booking codes are the human-readable ids guests see: "B" plus nine
// base36 characters, e.g. "B7K2M9QX41". They key bookings, check-ins and
// their archive counterparts.

const bookingCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const bookingCodeSuffixLen = 9

var bookingCodeRegex = regexp.MustCompile(`^B[A-Z0-9]{9}$`)

// GenerateBookingCode uses crypto/rand + rand.Int (math/big) to avoid
// modulo bias.
func GenerateBookingCode() (string, error) {
	var sb strings.Builder
	sb.WriteByte('B')
	alphaLen := big.NewInt(int64(len(bookingCodeCharset)))
	for i := 0; i < bookingCodeSuffixLen; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(bookingCodeCharset[num.Int64()])
	}
	return sb.String(), nil
}

// NormalizeBookingCode uppercases and strips whitespace.
func NormalizeBookingCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func IsValidBookingCodeFormat(code string) bool {
	return bookingCodeRegex.MatchString(NormalizeBookingCode(code))
}

// GenerateSecureToken returns a hex token of the given byte length, used for
// admin session tokens.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hexEncode(b), nil
}
