package output

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0"},
		{-time.Second, "0"},
		{450 * time.Nanosecond, "450ns"},
		{1500 * time.Nanosecond, "1.5µs"},
		{12250 * time.Microsecond, "12.25ms"},
		{1500 * time.Millisecond, "1.50s"},
		{90 * time.Second, "1.5m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.d))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-98765, "-98,765"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.n))
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "25.0%", Percent(25*time.Millisecond, 100*time.Millisecond))
	assert.Equal(t, "-", Percent(time.Second, 0))
}
