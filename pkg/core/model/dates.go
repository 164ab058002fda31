package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used throughout the system.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date (YYYY-MM-DD) into a UTC
// midnight time.Time. Dates are treated as calendar days, never as
// instants, so UTC here is only a normalization anchor.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange parses both endpoints. It does not require From <= To;
// range ordering is a validation concern, not a parsing one.
func ParseDateRange(from, to string) (DateRange, error) {
	f, err := ParseDate(from)
	if err != nil {
		return DateRange{}, err
	}
	t, err := ParseDate(to)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{From: f, To: t}, nil
}

// Inverted reports whether the range runs backwards (From after To).
func (r DateRange) Inverted() bool {
	return r.From.After(r.To)
}

// Overlaps reports whether two inclusive ranges intersect.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.From.After(other.To) && !other.From.After(r.To)
}

// Contains reports whether day falls inside the range, inclusive.
func (r DateRange) Contains(day time.Time) bool {
	return !day.Before(r.From) && !day.After(r.To)
}

// Days returns the number of calendar days the range spans, inclusive.
// An inverted range spans zero days.
func (r DateRange) Days() int {
	if r.Inverted() {
		return 0
	}
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// DaysInMonth counts the range's days that fall inside the given
// calendar month.
func (r DateRange) DaysInMonth(year int, month time.Month) int {
	count := 0
	for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
		if d.Year() == year && d.Month() == month {
			count++
		}
	}
	return count
}
