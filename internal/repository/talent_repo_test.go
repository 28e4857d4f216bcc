package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsSince(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		want int
	}{
		{"same day", now, 0},
		{"three weeks", time.Date(2026, 7, 25, 0, 0, 0, 0, time.UTC), 0},
		{"exactly six months", time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), 6},
		{"six months less a day", time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), 5},
		{"two years", time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), 24},
		{"joined in the future", now.Add(24 * time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthsSince(tt.from, now))
		})
	}
}
