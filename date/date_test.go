package date

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestDate(t *testing.T) {
	rq := require.New(t)

	d1 := New(2022, 1, 2)
	d2, err := Parse(DefaultFormat, "2022-01-02")
	rq.Nil(err)
	rq.Equal(d1, d2)
	rq.Equal("2022-01-02", d1.String())

	_, err = Parse(DefaultFormat, "2022-01-02 xxxx")
	rq.NotNil(err)

	_, err = Parse(time.RFC3339, "2022-01-02T10:00:00Z")
	rq.NotNil(err)

	rq.True(d1.Equal(NewFromTime(time.Date(2022, 1, 2, 23, 0, 0, 0, time.UTC))))
	rq.False(d1.Equal(New(2022, 1, 3)))

	defaultDate := Date{}
	rq.Equal(defaultDate, New(1, time.January, 1))
	rq.True(defaultDate.IsZero())
	rq.False(d1.IsZero())
}

func TestNewFromTimeUsesOwnLocation(t *testing.T) {
	rq := require.New(t)

	tokyo := time.FixedZone("JST", 9*60*60)
	// 2026-12-24 20:00 UTC is already the 25th in Tokyo.
	tm := time.Date(2026, time.December, 24, 20, 0, 0, 0, time.UTC).In(tokyo)
	rq.Equal("2026-12-25", NewFromTime(tm).String())
	rq.Equal(time.Friday, NewFromTime(tm).Weekday())
}

func TestInAndToday(t *testing.T) {
	rq := require.New(t)

	loc := time.FixedZone("X", -5*60*60)
	d := New(2026, time.January, 30)
	rq.Equal(time.Date(2026, time.January, 30, 0, 0, 0, 0, loc), d.In(loc))

	clock := fixedClock(time.Date(2026, time.March, 3, 23, 59, 0, 0, loc))
	rq.Equal(New(2026, time.March, 3), Today(clock))

	year, month, day := d.Parts()
	rq.Equal([]int{2026, 1, 30}, []int{year, int(month), day})
	rq.Equal(time.Friday, d.Weekday())
}
