package dateutil

import "time"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// MondayIndex returns the weekday of the date numbered Monday=0 .. Sunday=6
func MondayIndex(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday - 1
}

// NextMonday returns the Monday following a weekend date.
// Weekday dates are returned unchanged.
func NextMonday(date time.Time) time.Time {
	if !IsWeekend(date) {
		return date
	}
	daysUntilMonday := 7 - MondayIndex(date)
	return date.AddDate(0, 0, daysUntilMonday)
}

// DaysBetween returns the number of whole days from one date to another,
// ignoring time-of-day. Negative when to is before from.
func DaysBetween(from, to time.Time) int {
	f := StartOfDay(from)
	t := StartOfDay(to)
	return int(t.Sub(f).Hours() / 24)
}

// SameDateInYear applies the given month/day to a year.
// ok is false when that calendar date does not exist in the year
// (February 29 in a non-leap year).
func SameDateInYear(month time.Month, day, year int) (time.Time, bool) {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Month() != month || date.Day() != day {
		// time.Date normalized an impossible date (e.g. Feb 29 -> Mar 1)
		return time.Time{}, false
	}
	return date, true
}
