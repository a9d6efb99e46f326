package contact

import (
	"time"
)

// BirthdayWithinDays reports whether the next occurrence of birthday falls
// inside the inclusive range [today, today+days].
//
// The candidate occurrence is the birthday moved into today's year; if that
// date already passed, next year's occurrence is considered instead. A Feb 29
// birthday in a non-leap candidate year normalizes to Mar 1 (time.Date
// behavior). A zero birthday never matches.
func BirthdayWithinDays(birthday time.Time, today time.Time, days int) bool {
	if birthday.IsZero() {
		return false
	}

	today = dateOnly(today)
	end := today.AddDate(0, 0, days)

	candidate := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}

	return !candidate.Before(today) && !candidate.After(end)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
