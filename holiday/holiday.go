// Package holiday simulates a remote holiday lookup service. Holidays are
// fixed month/day entries, and every lookup waits for a configurable
// latency before answering.
package holiday

import (
	"context"
	"time"

	cal "github.com/rickar/cal/v2"

	"github.com/tsiemens/dateutil/date"
	"github.com/tsiemens/dateutil/log"
	"github.com/tsiemens/dateutil/util"
)

const DefaultLatency = 100 * time.Millisecond

var (
	NewYearsDay = &cal.Holiday{
		Name:  "New Year's Day",
		Month: time.January,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	ChristmasDay = &cal.Holiday{
		Name:  "Christmas Day",
		Month: time.December,
		Day:   25,
		Func:  cal.CalcDayOfMonth,
	}
	NewYearsEve = &cal.Holiday{
		Name:  "New Year's Eve",
		Month: time.December,
		Day:   31,
		Func:  cal.CalcDayOfMonth,
	}
)

// DefaultDefinitions returns the holidays every year has, in list order.
func DefaultDefinitions() []*cal.Holiday {
	return []*cal.Holiday{NewYearsDay, ChristmasDay, NewYearsEve}
}

type Entry struct {
	Name string
	Date time.Time
}

type Provider struct {
	// Latency is how long each lookup waits before answering.
	Latency time.Duration
	// After produces the latency timer. Tests replace it to control when
	// lookups resolve.
	After func(time.Duration) <-chan time.Time
	// Location holds the calendar the holiday dates are built in.
	Location *time.Location
	// Definitions lists the holidays in result order.
	Definitions []*cal.Holiday
	// ExactInstant makes IsHoliday require the date to equal a holiday's
	// midnight instant instead of only sharing its calendar day.
	ExactInstant bool
}

func NewProvider() *Provider {
	return &Provider{
		Latency:     DefaultLatency,
		After:       time.After,
		Location:    time.Local,
		Definitions: DefaultDefinitions(),
	}
}

func (p *Provider) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

func (p *Provider) definitions() []*cal.Holiday {
	if p.Definitions == nil {
		return DefaultDefinitions()
	}
	return p.Definitions
}

// observedIn reports whether h falls in year at all. Calc signals this with
// a zero time, which is also a real date in year 1.
func observedIn(h *cal.Holiday, year int) bool {
	if h.Func == nil ||
		(h.StartYear > 0 && year < h.StartYear) ||
		(h.EndYear > 0 && year > h.EndYear) {
		return false
	}
	for _, ex := range h.Except {
		if year == ex {
			return false
		}
	}
	return true
}

// Named returns the holidays of year with their names, without any delay.
func (p *Provider) Named(year int) []Entry {
	loc := p.location()
	entries := make([]Entry, 0, len(p.definitions()))
	for _, h := range p.definitions() {
		if !observedIn(h, year) {
			continue
		}
		actual, _ := h.Calc(year)
		entries = append(entries, Entry{
			Name: h.Name,
			Date: date.NewFromTime(actual).In(loc),
		})
	}
	return entries
}

func (p *Provider) wait(ctx context.Context) error {
	if p.Latency <= 0 {
		return ctx.Err()
	}
	after := p.After
	if after == nil {
		after = time.After
	}
	select {
	case <-after(p.Latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetHolidays returns the holidays of year at local midnight after the
// simulated latency. It only fails if ctx ends first. Calls are not
// cached or shared.
func (p *Provider) GetHolidays(ctx context.Context, year int) ([]time.Time, error) {
	log.Tracef("holiday", "fetching holidays for %d", year)
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	entries := p.Named(year)
	days := make([]time.Time, len(entries))
	for i, e := range entries {
		days[i] = e.Date
	}
	return days, nil
}

func (p *Provider) GetHolidaysAsync(ctx context.Context, year int) *util.Future[[]time.Time] {
	return util.Go(func() ([]time.Time, error) {
		return p.GetHolidays(ctx, year)
	})
}

// IsHoliday looks up the holidays of d's year and reports whether d falls
// on one of them.
func (p *Provider) IsHoliday(ctx context.Context, d time.Time) (bool, error) {
	holidays, err := p.GetHolidays(ctx, d.Year())
	if err != nil {
		return false, err
	}
	return matches(holidays, d, p.ExactInstant), nil
}

func (p *Provider) IsHolidayAsync(ctx context.Context, d time.Time) *util.Future[bool] {
	return util.Go(func() (bool, error) {
		return p.IsHoliday(ctx, d)
	})
}

func matches(holidays []time.Time, d time.Time, exact bool) bool {
	day := date.NewFromTime(d)
	for _, h := range holidays {
		if exact {
			if h.Equal(d) {
				return true
			}
		} else if date.NewFromTime(h).Equal(day) {
			return true
		}
	}
	return false
}
