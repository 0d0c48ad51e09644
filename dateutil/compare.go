package dateutil

import (
	"fmt"
	"time"

	"github.com/tsiemens/dateutil/date"
)

// IsWithinRange reports whether d lies strictly between from and to.
// Equal endpoints form a valid, empty range.
func IsWithinRange(d, from, to time.Time) (bool, error) {
	if from.After(to) {
		return false, fmt.Errorf("%w (from %v, to %v)", ErrInvalidRange, from, to)
	}
	return d.After(from) && d.Before(to), nil
}

// IsDateBefore reports whether d is strictly earlier than other.
func IsDateBefore(d, other time.Time) bool {
	return d.Before(other)
}

// IsSameDay reports whether other falls on the same calendar day as d,
// with other viewed in d's location. Time of day is ignored.
func IsSameDay(d, other time.Time) bool {
	return date.NewFromTime(d).Equal(date.NewFromTime(other.In(d.Location())))
}

// IsSameWeekday only compares the day of the week, so dates a multiple
// of seven days apart match. Prefer IsSameDay.
func IsSameWeekday(d, other time.Time) bool {
	return d.Weekday() == other.Weekday()
}
