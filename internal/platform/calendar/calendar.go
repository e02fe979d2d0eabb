// Package calendar works with local civil dates. A day boundary is the local
// midnight of the clock's zone, never a multiple of 24h of elapsed time.
package calendar

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

// Date is a civil date without a time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the civil date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses the YYYY-MM-DD form written by String.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// AddDays normalises through time.Date, so month and year overflow roll over.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// In returns local midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// DayStart returns local midnight of the day containing t.
func DayStart(t time.Time) time.Time {
	return DateOf(t).In(t.Location())
}

// NextDayStart returns local midnight of the day after t. AddDate keeps this
// correct across DST changes where a day is 23h or 25h long.
func NextDayStart(t time.Time) time.Time {
	start := DayStart(t)
	return time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, t.Location())
}

// NextLocalTime returns the first instant strictly after now whose local
// wall clock reads hour:minute.
func NextLocalTime(now time.Time, hour, minute int) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, now.Location())
	}
	return candidate
}
