package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tsiemens/dateutil/app/outfmt"
	"github.com/tsiemens/dateutil/date"
	"github.com/tsiemens/dateutil/dateutil"
	"github.com/tsiemens/dateutil/holiday"
	"github.com/tsiemens/dateutil/log"
	"github.com/tsiemens/dateutil/util"
)

var DateUtilVersion = "0.1.0"

// App runs each dateutil command and renders its result as a table.
type App struct {
	Clock      dateutil.Clock
	Location   *time.Location
	DateFormat string
	Holidays   *holiday.Loader
	Out        outfmt.TableWriter
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

func (a *App) dateFormat() string {
	if a.DateFormat == "" {
		return date.DefaultFormat
	}
	return a.DateFormat
}

// ParseDate reads a calendar date in the configured format as midnight in
// the configured location. RFC 3339 timestamps are accepted as well.
func (a *App) ParseDate(s string) (time.Time, error) {
	d, err := date.Parse(a.dateFormat(), s)
	if err == nil {
		return d.In(a.location()), nil
	}
	if tm, rfcErr := time.Parse(time.RFC3339, s); rfcErr == nil {
		return tm.In(a.location()), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q does not match %q or RFC 3339",
		dateutil.ErrInvalidDate, s, a.dateFormat())
}

func (a *App) ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", dateutil.ErrInvalidAmount, s)
	}
	return amount, nil
}

func (a *App) FormatTime(t time.Time) string {
	if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format(a.dateFormat())
	}
	return t.Format(time.RFC3339Nano)
}

func yesNo(b bool) string {
	return util.Tern(b, "yes", "no")
}

// latencyNote tells the reader the holiday answers came from the simulated
// lookup service.
func (a *App) latencyNote() string {
	return fmt.Sprintf("Holidays from simulated lookup (%v latency per year)", a.Holidays.Provider.Latency)
}

func (a *App) render(outType outfmt.OutputType, name string, table *outfmt.RenderTable) error {
	return a.Out.PrintRenderTable(outType, name, table)
}

func (a *App) RunYear() error {
	var clock dateutil.Clock = dateutil.SystemClock{}
	if a.Clock != nil {
		clock = a.Clock
	}
	year := dateutil.CurrentYear(clock)
	today := date.Today(clock)
	return a.render(outfmt.Result, "Current year", &outfmt.RenderTable{
		Header: []string{"Year", "Today"},
		Rows:   [][]string{{strconv.Itoa(year), today.In(time.UTC).Format(a.dateFormat())}},
	})
}

func (a *App) RunAdd(dateStr, amountStr, unitStr string) error {
	d, err := a.ParseDate(dateStr)
	if err != nil {
		return err
	}
	amount, err := a.ParseAmount(amountStr)
	if err != nil {
		return err
	}
	unit := dateutil.DefaultUnit
	if unitStr != "" {
		if unit, err = dateutil.ParseUnit(unitStr); err != nil {
			return err
		}
	}
	result, err := dateutil.AddValue(d, amount, unit)
	if err != nil {
		return err
	}
	return a.render(outfmt.Result, "Add", &outfmt.RenderTable{
		Header: []string{"Date", "Amount", "Unit", "Result"},
		Rows:   [][]string{{a.FormatTime(d), amount.String(), unit.String(), a.FormatTime(result)}},
	})
}

func (a *App) RunWithin(dateStr, fromStr, toStr string) error {
	var ds [3]time.Time
	for i, s := range []string{dateStr, fromStr, toStr} {
		d, err := a.ParseDate(s)
		if err != nil {
			return err
		}
		ds[i] = d
	}
	within, err := dateutil.IsWithinRange(ds[0], ds[1], ds[2])
	if err != nil {
		return err
	}
	return a.render(outfmt.Result, "Within range", &outfmt.RenderTable{
		Header: []string{"Date", "From", "To", "Within"},
		Rows: [][]string{{
			a.FormatTime(ds[0]), a.FormatTime(ds[1]), a.FormatTime(ds[2]), yesNo(within),
		}},
	})
}

func (a *App) parsePair(first, second string) (time.Time, time.Time, error) {
	d1, err := a.ParseDate(first)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	d2, err := a.ParseDate(second)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return d1, d2, nil
}

func (a *App) RunBefore(dateStr, otherStr string) error {
	d, other, err := a.parsePair(dateStr, otherStr)
	if err != nil {
		return err
	}
	return a.render(outfmt.Result, "Before", &outfmt.RenderTable{
		Header: []string{"Date", "Other", "Before"},
		Rows:   [][]string{{a.FormatTime(d), a.FormatTime(other), yesNo(dateutil.IsDateBefore(d, other))}},
	})
}

func (a *App) RunSameDay(dateStr, otherStr string, weekdayOnly bool) error {
	d, other, err := a.parsePair(dateStr, otherStr)
	if err != nil {
		return err
	}
	same := dateutil.IsSameDay(d, other)
	column := "Same day"
	if weekdayOnly {
		same = dateutil.IsSameWeekday(d, other)
		column = "Same weekday"
	}
	return a.render(outfmt.Result, column, &outfmt.RenderTable{
		Header: []string{"Date", "Other", column},
		Rows:   [][]string{{a.FormatTime(d), a.FormatTime(other), yesNo(same)}},
	})
}

func (a *App) RunHolidays(ctx context.Context, years []string) error {
	for _, ys := range years {
		year, err := strconv.Atoi(ys)
		if err != nil {
			return fmt.Errorf("Invalid year %q", ys)
		}
		days, err := a.Holidays.Holidays(ctx, year)
		if err != nil {
			return err
		}
		named := a.Holidays.Provider.Named(year)
		table := &outfmt.RenderTable{
			Header: []string{"Holiday", "Date", "Weekday"},
			Notes:  []string{a.latencyNote()},
		}
		for i, d := range days {
			name := ""
			if i < len(named) {
				name = named[i].Name
			}
			table.Rows = append(table.Rows, []string{name, a.FormatTime(d), date.NewFromTime(d).Weekday().String()})
		}
		if err := a.render(outfmt.Holidays, ys, table); err != nil {
			return err
		}
	}
	return nil
}

// RunIsHoliday checks every date. Dates that cannot be checked are listed
// in the table's errors and left out of its rows.
func (a *App) RunIsHoliday(ctx context.Context, dates []string) error {
	table := &outfmt.RenderTable{
		Header: []string{"Date", "Holiday"},
		Notes:  []string{a.latencyNote()},
	}
	nHolidays := 0
	for _, s := range dates {
		d, err := a.ParseDate(s)
		if err == nil {
			var ok bool
			ok, err = a.Holidays.IsHoliday(ctx, d)
			if err == nil {
				table.Rows = append(table.Rows, []string{a.FormatTime(d), yesNo(ok)})
				nHolidays += util.Tern(ok, 1, 0)
				continue
			}
		}
		log.Debugf("isholiday %q: %v", s, err)
		table.Errors = append(table.Errors, fmt.Errorf("%s: %w", s, err))
	}
	table.Footer = []string{"Holidays", fmt.Sprintf("%d of %d", nHolidays, len(table.Rows))}
	if err := a.render(outfmt.HolidayChecks, "", table); err != nil {
		return err
	}
	if len(table.Errors) > 0 {
		return fmt.Errorf("%d of %d dates could not be checked: %w",
			len(table.Errors), len(dates), errors.Unwrap(table.Errors[0]))
	}
	return nil
}
