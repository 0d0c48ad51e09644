package outfmt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleTable() *RenderTable {
	return &RenderTable{
		Header: []string{"Holiday", "Date"},
		Rows: [][]string{
			{"New Year's Day", "2026-01-01"},
			{"Christmas Day", "2026-12-25"},
		},
		Notes: []string{"simulated"},
	}
}

func TestSTDWriter(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer
	w := NewSTDWriter(&buf)
	table := sampleTable()
	table.Errors = []error{errors.New("partial")}
	table.Footer = []string{"Total", "2"}
	rq.NoError(w.PrintRenderTable(Holidays, "2026", table))

	out := buf.String()
	rq.Contains(out, "[!] partial")
	rq.Contains(out, "Holidays for 2026")
	rq.Contains(out, "HOLIDAY")
	rq.Contains(out, "Christmas Day")
	rq.Contains(out, "2026-12-25")
	rq.Contains(out, "simulated")
	rq.Contains(out, "TOTAL")
}

func TestCSVWriter(t *testing.T) {
	rq := require.New(t)

	dir := filepath.Join(t.TempDir(), "out")
	w, err := NewCSVWriter(dir)
	rq.NoError(err)

	rq.NoError(w.PrintRenderTable(Holidays, "2026", sampleTable()))
	data, err := os.ReadFile(filepath.Join(dir, "holidays-2026.csv"))
	rq.NoError(err)
	rq.Equal("Holiday,Date\nNew Year's Day,2026-01-01\nChristmas Day,2026-12-25\nsimulated\n", string(data))

	rq.NoError(w.PrintRenderTable(Result, "Add Result", &RenderTable{Header: []string{"x"}}))
	_, err = os.Stat(filepath.Join(dir, "add-result.csv"))
	rq.NoError(err)

	checks := &RenderTable{
		Header: []string{"Date", "Holiday"},
		Rows:   [][]string{{"2026-12-25", "yes"}},
		Footer: []string{"Holidays", "1 of 1"},
	}
	rq.NoError(w.PrintRenderTable(HolidayChecks, "", checks))
	data, err = os.ReadFile(filepath.Join(dir, "holiday-checks.csv"))
	rq.NoError(err)
	rq.Equal("Date,Holiday\n2026-12-25,yes\nHolidays,1 of 1\n", string(data))

	rq.Error(w.PrintRenderTable(OutputType(99), "x", sampleTable()))
}
