package addressbook

import (
	"time"
)

// CongratulationLayout renders a congratulation date as YYYY.MM.DD.
const CongratulationLayout = "2006.01.02"

// Congratulation is the day a contact should be greeted.
type Congratulation struct {
	Name string
	Date time.Time
}

func (c Congratulation) String() string {
	return c.Name + ": " + c.Date.Format(CongratulationLayout)
}

// Birthdays returns the next congratulation date of every contact with a
// birthday, in insertion order. Contacts without a birthday are skipped.
func (b *AddressBook) Birthdays(today time.Time) []Congratulation {
	day := truncateDay(today)

	var out []Congratulation
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		out = append(out, Congratulation{
			Name: r.Name(),
			Date: congratulationDate(bd.Date(), day),
		})
	}
	return out
}

// congratulationDate finds the next anniversary of birthday on or after
// today and moves it off the weekend.
func congratulationDate(birthday, today time.Time) time.Time {
	date := anniversary(birthday, today.Year())
	if date.Before(today) {
		date = anniversary(birthday, today.Year()+1)
	}
	for date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// anniversary places birthday's month and day in year. time.Date
// normalises Feb 29 of a common year to Mar 1.
func anniversary(birthday time.Time, year int) time.Time {
	return time.Date(year, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
}

// truncateDay keeps the calendar date of t as seen in its own location.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
