package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Deterministic(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	first := Fingerprint(1250, "Zomato", at, "HDFCBNK")
	second := Fingerprint(1250, "Zomato", at, "HDFCBNK")

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestFingerprint_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 15, 22, 45, 12, 0, time.UTC)

	assert.Equal(t,
		Fingerprint(500, "Uber", morning, "ICICIB"),
		Fingerprint(500, "Uber", evening, "ICICIB"),
	)
}

func TestFingerprint_DistinguishesCalendarDays(t *testing.T) {
	day1 := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)

	assert.NotEqual(t,
		Fingerprint(500, "Uber", day1, "ICICIB"),
		Fingerprint(500, "Uber", day2, "ICICIB"),
	)
}

func TestFingerprint_SensitiveToEachComponent(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	base := Fingerprint(1250, "Zomato", at, "HDFCBNK")

	assert.NotEqual(t, base, Fingerprint(1251, "Zomato", at, "HDFCBNK"))
	assert.NotEqual(t, base, Fingerprint(1250, "Swiggy", at, "HDFCBNK"))
	assert.NotEqual(t, base, Fingerprint(1250, "Zomato", at, "SBIBNK"))
}

func TestFingerprint_AmountFormatDropsTrailingZeros(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	// 1250.50 parses to the same float64 as 1250.5; the seed string must not
	// depend on how the source text spelled the amount.
	assert.Equal(t,
		Fingerprint(1250.50, "Zomato", at, "HDFCBNK"),
		Fingerprint(1250.5, "Zomato", at, "HDFCBNK"),
	)
}

func TestFingerprint_NonNegativeHex(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	// Exercise a spread of inputs; none may render with a sign.
	inputs := []struct {
		desc   string
		sender string
		amount float64
	}{
		{"Zomato", "HDFCBNK", 1250},
		{"UPI: ramesh@upi", "ICICIB", 3500},
		{"Bank Transaction", "", 0.01},
		{"a very long merchant description here", "VM-HDFCBK", 99999.99},
	}
	for _, in := range inputs {
		got := Fingerprint(in.amount, in.desc, at, in.sender)
		assert.NotEmpty(t, got)
		assert.NotContains(t, got, "-")
	}
}
