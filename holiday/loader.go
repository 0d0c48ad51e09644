package holiday

import (
	"context"
	"sync"
	"time"

	"github.com/tsiemens/dateutil/util"
)

// Loader keeps each year's holidays once fetched, so a batch of lookups
// only pays the provider latency once per year. Concurrent lookups of the
// same year share one fetch; different years are fetched independently.
type Loader struct {
	Provider *Provider

	mu    sync.Mutex
	years map[int]*util.Future[[]time.Time]
}

func NewLoader(provider *Provider) *Loader {
	return &Loader{
		Provider: provider,
		years:    make(map[int]*util.Future[[]time.Time]),
	}
}

// fetch returns the year's pending or finished lookup, starting one if
// there is none. The lookup is not tied to any caller's context, so a
// caller giving up does not fail it for the others.
func (l *Loader) fetch(year int) *util.Future[[]time.Time] {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.years[year]; ok {
		return f
	}
	f := l.Provider.GetHolidaysAsync(context.Background(), year)
	l.years[year] = f
	return f
}

func (l *Loader) forget(year int, f *util.Future[[]time.Time]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.years[year] == f {
		delete(l.years, year)
	}
}

// Holidays returns a copy of the year's holidays, waiting for the lookup
// until ctx ends.
func (l *Loader) Holidays(ctx context.Context, year int) ([]time.Time, error) {
	f := l.fetch(year)
	select {
	case <-f.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	days, err := f.Wait()
	if err != nil {
		l.forget(year, f)
		return nil, err
	}
	return append([]time.Time(nil), days...), nil
}

func (l *Loader) IsHoliday(ctx context.Context, d time.Time) (bool, error) {
	days, err := l.Holidays(ctx, d.Year())
	if err != nil {
		return false, err
	}
	return matches(days, d, l.Provider.ExactInstant), nil
}
