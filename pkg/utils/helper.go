package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return result
}

// ParseFloat converts string to float64 with default value
func ParseFloat(value string, defaultValue float64) float64 {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return result
}

// NameFromEmail derives a display name dari bagian lokal email.
// Demo login tidak punya field nama sendiri.
func NameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// GenerateOrderID creates a human-readable order reference with timestamp
func GenerateOrderID() string {
	now := time.Now()

	// Format: AS-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("AS-%s-%s-%s", datePart, timePart, randomPart)
}
