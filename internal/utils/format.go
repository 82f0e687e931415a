package utils

import "time"

const (
	dayLayout      = "2006-01-02"
	longDateLayout = "Jan 2, 2006"
	clockOutLayout = "3:04 PM"
)

// FormatTime renders an "HH:MM" 24-hour string as a 12-hour label
// ("09:00" -> "9:00 AM", "00:00" -> "12:00 AM"). Unparseable input is
// returned unchanged.
func FormatTime(timeStr string) string {
	t, ok := ParseClock(timeStr)
	if !ok {
		return timeStr
	}
	return t.Format(clockOutLayout)
}

// FormatDate renders an ISO date as "Today", "Tomorrow" or a long-form
// date. Unparseable input is returned unchanged.
func FormatDate(dateStr string) string {
	return formatDateAt(dateStr, time.Now())
}

func formatDateAt(dateStr string, now time.Time) string {
	d, ok := parseDay(dateStr)
	if !ok {
		return dateStr
	}
	today := truncateDay(now)
	switch truncateDay(d) {
	case today:
		return "Today"
	case today.AddDate(0, 0, 1):
		return "Tomorrow"
	}
	return d.Format(longDateLayout)
}

// FormatDateTime renders an ISO timestamp as a combined long-date and
// 12-hour time. Unparseable input is returned unchanged.
func FormatDateTime(isoStr string) string {
	t, ok := parseTimestamp(isoStr)
	if !ok {
		return isoStr
	}
	return t.Format(longDateLayout + " " + clockOutLayout)
}

// IsOverdue reports whether the combined date+time instant is strictly in
// the past. Any parse failure yields false, never flagging bad input as
// overdue.
func IsOverdue(dateStr, timeStr string) bool {
	return isOverdueAt(dateStr, timeStr, time.Now())
}

func isOverdueAt(dateStr, timeStr string, now time.Time) bool {
	d, ok := parseDay(dateStr)
	if !ok {
		return false
	}
	c, ok := ParseClock(timeStr)
	if !ok {
		return false
	}
	at := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, now.Location())
	return at.Before(now)
}

// parseDay accepts a bare ISO date or a full RFC 3339 timestamp.
func parseDay(s string) (time.Time, bool) {
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t, true
	}
	if t, ok := parseTimestamp(s); ok {
		return t, true
	}
	return time.Time{}, false
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
