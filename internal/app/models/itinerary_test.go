package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationDays(t *testing.T) {
	date := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name     string
		start    *time.Time
		end      *time.Time
		expected int
	}{
		{"three day trip", date(2026, time.March, 10), date(2026, time.March, 13), 3},
		{"same day", date(2026, time.March, 10), date(2026, time.March, 10), 0},
		{"end before start clamps to zero", date(2026, time.March, 13), date(2026, time.March, 10), 0},
		{"missing start", nil, date(2026, time.March, 10), 0},
		{"missing end", date(2026, time.March, 10), nil, 0},
		{"both missing", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := TripRequest{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.expected, req.DurationDays())
		})
	}
}

func TestDurationDaysPartialDay(t *testing.T) {
	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 12, 18, 0, 0, 0, time.UTC)
	req := TripRequest{StartDate: &start, EndDate: &end}
	// Partial final days round up.
	assert.Equal(t, 3, req.DurationDays())
}
