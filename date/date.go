package date

import (
	"fmt"
	"time"
)

const DefaultFormat = "2006-01-02"

// Represents a pure calendar date, with no effects from time zones, or time.
// Represented in UTC time at 00:00:00
type Date struct {
	time time.Time
}

// Clock is anything that can report the current instant.
type Clock interface {
	Now() time.Time
}

func (d Date) UTCTime() time.Time {
	return d.time
}

func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// NewFromTime takes the calendar date of t as seen in t's own location.
func NewFromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

func (d Date) isPureUtcDate() bool {
	other := NewFromTime(d.time)
	return d == other
}

// IsZero reports whether d is the zero Date (0001-01-01).
func (d Date) IsZero() bool {
	return d.time.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.time.Equal(other.time)
}

func Parse(dFmt string, dateStr string) (Date, error) {
	tm, err := time.Parse(dFmt, dateStr)
	if err != nil {
		return Date{}, err
	}
	d := Date{tm}
	if !d.isPureUtcDate() {
		return Date{}, fmt.Errorf("Format %v and string %v did not produce a pure date", dFmt, dateStr)
	}
	return d, nil
}

// Today returns the current calendar date according to clock, in the
// clock's location.
func Today(clock Clock) Date {
	return NewFromTime(clock.Now())
}

func (d Date) String() string {
	year, month, day := d.Parts()
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}

func (d Date) Parts() (int, time.Month, int) {
	return d.time.Date()
}

func (d Date) Weekday() time.Weekday {
	return d.time.Weekday()
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	year, month, day := d.Parts()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
