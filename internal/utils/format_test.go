package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"morning", "09:00", "9:00 AM"},
		{"afternoon", "13:30", "1:30 PM"},
		{"midnight", "00:00", "12:00 AM"},
		{"noon", "12:00", "12:00 PM"},
		{"late evening", "23:59", "11:59 PM"},
		{"empty returned unchanged", "", ""},
		{"garbage returned unchanged", "not a time", "not a time"},
		{"out of range returned unchanged", "25:00", "25:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.input))
		})
	}
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"today", "2026-03-10", "Today"},
		{"tomorrow", "2026-03-11", "Tomorrow"},
		{"past date long form", "2020-01-15", "Jan 15, 2020"},
		{"future date long form", "2026-12-01", "Dec 1, 2026"},
		{"garbage returned unchanged", "not-a-date", "not-a-date"},
		{"empty returned unchanged", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDateAt(tt.input, now))
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "Feb 20, 2026 2:00 PM", FormatDateTime("2026-02-20T14:00:00Z"))
	assert.Equal(t, "Feb 20, 2026 9:05 AM", FormatDateTime("2026-02-20T09:05:00"))
	assert.Equal(t, "nope", FormatDateTime("nope"))
	assert.Equal(t, "", FormatDateTime(""))
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		time string
		want bool
	}{
		{"yesterday any time", "2026-03-09", "23:59", true},
		{"tomorrow any time", "2026-03-11", "00:01", false},
		{"today one minute ago", "2026-03-10", "11:59", true},
		{"today one minute ahead", "2026-03-10", "12:01", false},
		{"exact instant is not overdue", "2026-03-10", "12:00", false},
		{"bad date fails safe", "bad", "12:00", false},
		{"bad time fails safe", "2026-03-09", "bad", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isOverdueAt(tt.date, tt.time, now))
		})
	}
}

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 9*60+30, TimeToMinutes("09:30"))
	assert.Equal(t, 23*60+59, TimeToMinutes("23:59"))
	assert.Equal(t, -1, TimeToMinutes("junk"))
}
