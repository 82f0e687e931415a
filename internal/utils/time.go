package utils

import "time"

const clockLayout = "15:04"

// ParseClock parses an "HH:MM" 24-hour string.
func ParseClock(s string) (time.Time, bool) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
// Returns -1 if the string is unparseable.
func TimeToMinutes(timeStr string) int {
	t, ok := ParseClock(timeStr)
	if !ok {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}
