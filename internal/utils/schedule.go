package utils

import (
	"sort"
	"time"

	"github.com/careconnect/careconnect/internal/domain"
)

// Due window around a schedule slot: up to 30 minutes past, up to 60
// minutes ahead.
const (
	dueWindowPastMinutes  = 30
	dueWindowAheadMinutes = 60
)

// DueMedications filters medications with any schedule slot inside the due
// window around now. Matching is by time-of-day only; every medication is
// treated as daily-recurring regardless of its frequency text. Original
// relative order is preserved.
func DueMedications(meds []domain.Medication, now time.Time) []domain.Medication {
	nowMinutes := now.Hour()*60 + now.Minute()
	due := make([]domain.Medication, 0)
	for _, med := range meds {
		for _, slot := range med.Times {
			slotMinutes := TimeToMinutes(slot)
			if slotMinutes < 0 {
				continue
			}
			diff := slotMinutes - nowMinutes
			if diff >= -dueWindowPastMinutes && diff <= dueWindowAheadMinutes {
				due = append(due, med)
				break
			}
		}
	}
	return due
}

// UpcomingAppointments filters to appointments dated today or later, sorts
// ascending by date and keeps the first 3. The sort is stable, so same-day
// appointments keep their original relative order.
func UpcomingAppointments(appts []domain.Appointment, now time.Time) []domain.Appointment {
	today := truncateDay(now)
	upcoming := make([]domain.Appointment, 0)
	for _, apt := range appts {
		d, ok := parseDay(apt.Date)
		if !ok {
			continue
		}
		if !truncateDay(d).Before(today) {
			upcoming = append(upcoming, apt)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		di, _ := parseDay(upcoming[i].Date)
		dj, _ := parseDay(upcoming[j].Date)
		return di.Before(dj)
	})
	if len(upcoming) > 3 {
		upcoming = upcoming[:3]
	}
	return upcoming
}
