package dateutil

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tsiemens/dateutil/date"
	"github.com/tsiemens/dateutil/log"
)

// Each limit spans about 550,000 years, twice the 8.64e15 ms either side of
// the epoch that a millisecond timeline covers. Longer offsets cannot land
// inside that range from any starting point within it.
const (
	maxOffsetMillis = 17_280_000_000_000_000
	maxOffsetDays   = 200_000_000
	maxOffsetMonths = 6_600_000
)

var (
	decSeven       = decimal.NewFromInt(7)
	decTwelve      = decimal.NewFromInt(12)
	decMillisPerS  = decimal.NewFromInt(1000)
	decMillisPerMn = decimal.NewFromInt(60 * 1000)
)

// Add returns d moved by amount of unit. Month and year offsets keep the
// day of month, clamped to the length of the target month. Day and week
// offsets move by calendar days in d's location. Second and minute
// offsets are elapsed time at millisecond resolution. Fractional amounts
// are truncated toward zero after scaling to the finest field of the
// unit (1.5 weeks is 10 days, 0.5 years is 6 months).
func Add(d time.Time, amount float64, unit Unit) (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, ErrInvalidDate
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return addDecimal(d, decimal.NewFromFloat(amount), unit)
}

// AddDefault adds amount of DefaultUnit.
func AddDefault(d time.Time, amount float64) (time.Time, error) {
	return Add(d, amount, DefaultUnit)
}

// AddValue is Add for dynamically typed input, such as values decoded from
// JSON or YAML. The date may be a time.Time, a non-nil *time.Time or a
// date.Date; zero values count as invalid. The amount may be any Go
// integer or float kind, or a decimal.Decimal. Anything else, including
// numeric strings, is rejected.
func AddValue(d interface{}, amount interface{}, unit Unit) (time.Time, error) {
	tm, err := toTime(d)
	if err != nil {
		return time.Time{}, err
	}
	amt, err := toDecimal(amount)
	if err != nil {
		return time.Time{}, err
	}
	return addDecimal(tm, amt, unit)
}

func toTime(v interface{}) (time.Time, error) {
	var tm time.Time
	switch d := v.(type) {
	case time.Time:
		tm = d
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("%w: nil", ErrInvalidDate)
		}
		tm = *d
	case date.Date:
		tm = d.UTCTime()
	default:
		return time.Time{}, fmt.Errorf("%w: %T is not a date", ErrInvalidDate, v)
	}
	if tm.IsZero() {
		return time.Time{}, ErrInvalidDate
	}
	return tm, nil
}

func toDecimal(v interface{}) (decimal.Decimal, error) {
	switch a := v.(type) {
	case int:
		return decimal.NewFromInt(int64(a)), nil
	case int8:
		return decimal.NewFromInt(int64(a)), nil
	case int16:
		return decimal.NewFromInt(int64(a)), nil
	case int32:
		return decimal.NewFromInt(int64(a)), nil
	case int64:
		return decimal.NewFromInt(a), nil
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(a)), 0), nil
	case uint8:
		return decimal.NewFromInt(int64(a)), nil
	case uint16:
		return decimal.NewFromInt(int64(a)), nil
	case uint32:
		return decimal.NewFromInt(int64(a)), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(a), 0), nil
	case float32:
		return floatToDecimal(float64(a))
	case float64:
		return floatToDecimal(a)
	case decimal.Decimal:
		return a, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %T is not a number", ErrInvalidAmount, v)
}

func floatToDecimal(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, f)
	}
	return decimal.NewFromFloat(f), nil
}

func addDecimal(d time.Time, amount decimal.Decimal, unit Unit) (time.Time, error) {
	log.Tracef("add", "%v + %s %s", d, amount, unit)
	switch unit {
	case Years:
		months, err := truncated(amount.Mul(decTwelve), maxOffsetMonths)
		if err != nil {
			return time.Time{}, err
		}
		return addMonths(d, int(months)), nil
	case Months:
		months, err := truncated(amount, maxOffsetMonths)
		if err != nil {
			return time.Time{}, err
		}
		return addMonths(d, int(months)), nil
	case Weeks:
		days, err := truncated(amount.Mul(decSeven), maxOffsetDays)
		if err != nil {
			return time.Time{}, err
		}
		return d.AddDate(0, 0, int(days)), nil
	case Days:
		days, err := truncated(amount, maxOffsetDays)
		if err != nil {
			return time.Time{}, err
		}
		return d.AddDate(0, 0, int(days)), nil
	case Minutes:
		ms, err := truncated(amount.Mul(decMillisPerMn), maxOffsetMillis)
		if err != nil {
			return time.Time{}, err
		}
		return addMillis(d, ms), nil
	case Seconds:
		ms, err := truncated(amount.Mul(decMillisPerS), maxOffsetMillis)
		if err != nil {
			return time.Time{}, err
		}
		return addMillis(d, ms), nil
	}
	return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidUnit, unit)
}

// truncated drops the fractional part of amount and checks it against limit.
func truncated(amount decimal.Decimal, limit int64) (int64, error) {
	whole := amount.Truncate(0)
	if whole.Abs().GreaterThan(decimal.NewFromInt(limit)) {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, amount)
	}
	return whole.IntPart(), nil
}

// addMillis adds elapsed time without going through time.Duration, which
// cannot span more than about 292 years.
func addMillis(d time.Time, ms int64) time.Time {
	if ms == 0 {
		return d
	}
	sec := d.Unix() + ms/1000
	nsec := int64(d.Nanosecond()) + (ms%1000)*int64(time.Millisecond)
	return time.Unix(sec, nsec).In(d.Location())
}

func addMonths(d time.Time, months int) time.Time {
	if months == 0 {
		return d
	}
	year, month, day := d.Date()
	hour, minute, sec := d.Clock()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, d.Location())
	if last := daysIn(target.Year(), target.Month(), d.Location()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, hour, minute, sec, d.Nanosecond(), d.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
