package types

import (
	"time"
)

// Date is a calendar day in a specific location.
//
// All digest bucketing is done on local calendar days, so a transaction
// booked at 23:30 local time stays on that day no matter which UTC offset
// the evaluation instant has. The underlying value is midnight local time.
type Date time.Time

// NewDate returns the Date for the given calendar parts in loc.
func NewDate(year int, month time.Month, day int, loc *time.Location) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, loc))
}

// DateOf returns the calendar day on which t falls in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	year, month, day := t.In(loc).Date()
	return NewDate(year, month, day, loc)
}

// ParseDate parses a "YYYY-MM-DD" string as a calendar day in loc.
func ParseDate(s string, loc *time.Location) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return Date{}, err
	}

	return Date(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// Time returns the underlying time, midnight local time.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// AddDays adds n calendar days. Day arithmetic goes through the calendar
// parts, so crossing a DST transition cannot shift the result off midnight.
func (d Date) AddDays(n int) Date {
	year, month, day := time.Time(d).Date()
	return NewDate(year, month, day+n, time.Time(d).Location())
}

// StartOfWeek returns the Monday of the week the date is in.
// ISO weekday numbering is used, so Sunday counts as day 7.
func (d Date) StartOfWeek() Date {
	weekday := int(time.Time(d).Weekday())
	if weekday == 0 {
		weekday = 7
	}

	return d.AddDays(1 - weekday)
}

// StartOfMonth returns the first day of the month the date is in.
func (d Date) StartOfMonth() Date {
	year, month, _ := time.Time(d).Date()
	return NewDate(year, month, 1, time.Time(d).Location())
}

// DayOfMonth returns the day of the month, clamped to [1, 31].
// The clamp keeps it safe to use as a divisor for per-day averages.
func (d Date) DayOfMonth() int {
	day := time.Time(d).Day()
	if day < 1 {
		return 1
	}
	if day > 31 {
		return 31
	}

	return day
}

// Month returns the Month the date is in.
func (d Date) Month() Month {
	return MonthOf(time.Time(d))
}

// Before reports whether the day d is before the day e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the day d is after the day e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same calendar day.
func (d Date) Equal(e Date) bool {
	return d.String() == e.String()
}

// Contains reports whether the time instant falls on this calendar day.
func (d Date) Contains(t time.Time) bool {
	return DateOf(t, time.Time(d).Location()).Equal(d)
}
