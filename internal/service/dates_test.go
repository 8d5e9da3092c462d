package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := parseISODate(s)
	require.NoError(t, err)
	return d
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name   string
		pickup string
		ret    string
		want   int
	}{
		{"four nights", "2024-06-01", "2024-06-05", 4},
		{"single day", "2024-06-01", "2024-06-02", 1},
		{"same day", "2024-06-01", "2024-06-01", 0},
		{"reversed clamps to zero", "2024-06-05", "2024-06-01", 0},
		{"across month boundary", "2024-06-28", "2024-07-02", 4},
		{"across leap day", "2024-02-28", "2024-03-01", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rentalDays(mustDate(t, tt.pickup), mustDate(t, tt.ret))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "2024-06-01", "2024-06-05", "2024-06-01", "2024-06-05", true},
		{"contained", "2024-06-01", "2024-06-10", "2024-06-03", "2024-06-04", true},
		{"partial", "2024-06-01", "2024-06-05", "2024-06-04", "2024-06-08", true},
		{"shared boundary day", "2024-06-01", "2024-06-05", "2024-06-05", "2024-06-08", true},
		{"disjoint after", "2024-06-01", "2024-06-05", "2024-06-06", "2024-06-08", false},
		{"disjoint before", "2024-06-06", "2024-06-08", "2024-06-01", "2024-06-05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, rangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd), "overlap must be symmetric")
		})
	}
}

func TestParseISODate_RejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "06/01/2024", "2024-6-1", "not a date"} {
		_, err := parseISODate(s)
		assert.Error(t, err, s)
	}
}
