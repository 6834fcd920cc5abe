package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthOf(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full date", "2025-11-05", "2025-11"},
		{"month already", "2025-11", "2025-11"},
		{"too short", "2025", "2025"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthOf(tt.input))
		})
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid", "2025-11-05", true},
		{"leap day", "2024-02-29", true},
		{"non leap day", "2025-02-29", false},
		{"month out of range", "2025-13-01", false},
		{"wrong shape", "05/11/2025", false},
		{"missing zero padding", "2025-1-5", false},
		{"month only", "2025-11", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidDate(tt.input))
		})
	}
}

func TestValidMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid", "2025-11", true},
		{"december", "2025-12", true},
		{"month out of range", "2025-13", false},
		{"full date", "2025-11-05", false},
		{"missing zero padding", "2025-1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidMonth(tt.input))
		})
	}
}

func TestCurrentMonth(t *testing.T) {
	assert.Equal(t, time.Now().Format(MonthLayoutISO), CurrentMonth())
	assert.True(t, ValidMonth(CurrentMonth()))
}

func TestNowISO(t *testing.T) {
	now := NowISO()
	parsed, err := time.Parse(time.RFC3339, now)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
}
