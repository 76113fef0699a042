package addressbook

import (
	"time"

	"github.com/username/contact-book/pkg/dateutil"
)

// lookaheadDays is the congratulation window, inclusive, measured from today
// to the (weekend-shifted) congratulation date.
const lookaheadDays = 7

// UpcomingBirthdays returns the contacts whose congratulation date falls
// within the next week, grouped by weekday (Monday=0 .. Sunday=6). Only
// weekdays with at least one contact appear in the result; names within a
// bucket follow the book's insertion order.
//
// The congratulation date is the birthday's next occurrence, moved to the
// following Monday when it lands on a weekend. The window is checked against
// the shifted date, so a Friday-adjacent weekend birthday can shift out of
// an otherwise matching week.
//
// Contacts born on February 29 are skipped entirely when the candidate year
// is not a leap year. They reappear in leap years.
func (b *AddressBook) UpcomingBirthdays(today time.Time) map[int][]string {
	// The query works on calendar dates; strip time-of-day and location.
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	upcoming := make(map[int][]string)

	for _, record := range b.All() {
		if record.Birthday == nil {
			continue
		}

		next, ok := nextOccurrence(*record.Birthday, today)
		if !ok {
			continue
		}

		congratulate := dateutil.NextMonday(next)
		if dateutil.DaysBetween(today, congratulate) > lookaheadDays {
			continue
		}

		weekday := dateutil.MondayIndex(congratulate)
		upcoming[weekday] = append(upcoming[weekday], record.Name)
	}

	return upcoming
}

// nextOccurrence finds the first occurrence of the birthday's month/day
// strictly after today. ok is false when that occurrence would be Feb 29 of
// a non-leap year.
func nextOccurrence(birthday, today time.Time) (time.Time, bool) {
	next, ok := dateutil.SameDateInYear(birthday.Month(), birthday.Day(), today.Year())
	if !ok {
		return time.Time{}, false
	}

	if !next.After(today) {
		next, ok = dateutil.SameDateInYear(birthday.Month(), birthday.Day(), today.Year()+1)
		if !ok {
			return time.Time{}, false
		}
	}

	return next, true
}
