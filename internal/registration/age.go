package registration

import "time"

// Age returns the number of full years between birth and now, decrementing
// by one when the current month/day precedes the birthday. Both the
// validator and the mapper go through this function so the two can never
// disagree on a boundary date.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// FormatBirthDate renders a birth date as the backend's calendar-date form,
// YYYY-MM-DD in UTC with no time component.
func FormatBirthDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
