package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThousands(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{138, "138"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{-4321, "-4,321"},
		{-12, "-12"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Thousands(tt.input))
		})
	}
}

func TestDecimalAndPercent(t *testing.T) {
	assert.Equal(t, "14.33", Decimal(14.333333))
	assert.Equal(t, "0.00", Decimal(0))
	assert.Equal(t, "66.7%", Percent(2.0/3.0))
}

func TestCompact(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{950, "950"},
		{1200, "1.2k"},
		{34000, "34k"},
		{1500000, "1.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compact(tt.input))
		})
	}
}
