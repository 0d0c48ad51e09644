package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tsiemens/dateutil/log"
)

func TestDefaults(t *testing.T) {
	rq := require.New(t)

	c, err := Load("")
	rq.NoError(err)
	rq.Equal(time.Local, c.Location)
	rq.Equal("2006-01-02", c.DateFormat)
	rq.Equal(100*time.Millisecond, c.HolidayLatency)
	rq.Equal(log.WARNING, c.LogLevel)
}

func TestParse(t *testing.T) {
	rq := require.New(t)

	c := Default()
	err := c.Parse([]byte(`
timezone: UTC
date_format: 02/01/2006
holiday_latency_ms: 0
log_level: debug
trace: holiday,add
`))
	rq.NoError(err)
	rq.Equal("UTC", c.Location.String())
	rq.Equal("02/01/2006", c.DateFormat)
	rq.Equal(time.Duration(0), c.HolidayLatency)
	rq.Equal(log.DEBUG, c.LogLevel)
	rq.Equal("holiday,add", c.Trace)

	p := c.HolidayProvider()
	rq.Equal(time.Duration(0), p.Latency)
	rq.Equal("UTC", p.Location.String())
}

func TestParseKeepsUnsetValues(t *testing.T) {
	rq := require.New(t)

	c := Default()
	rq.NoError(c.Parse([]byte("log_level: error\n")))
	rq.Equal(log.ERROR, c.LogLevel)
	rq.Equal(time.Local, c.Location)
	rq.Equal(100*time.Millisecond, c.HolidayLatency)
}

func TestParseWarnsOnNonDateFormat(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	c := Default()
	rq.NoError(c.Parse([]byte("date_format: 02/01/2006\n")))
	rq.Empty(buf.String())

	for _, dFmt := range []string{"15:04", "2006-01"} {
		buf.Reset()
		rq.NoError(c.Parse([]byte("date_format: \"" + dFmt + "\"\n")))
		rq.Equal(dFmt, c.DateFormat)
		rq.Contains(buf.String(), "does not represent a plain calendar date", dFmt)
	}
}

func TestParseErrors(t *testing.T) {
	rq := require.New(t)

	for _, doc := range []string{
		"timezone: Nowhere/Special",
		"holiday_latency_ms: -5",
		"log_level: chatty",
		"timezone: [",
	} {
		c := Default()
		rq.Error(c.Parse([]byte(doc)), doc)
	}
}

func TestLoadFile(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "dateutil.yaml")
	rq.NoError(os.WriteFile(path, []byte("holiday_latency_ms: 250\n"), 0600))
	c, err := Load(path)
	rq.NoError(err)
	rq.Equal(250*time.Millisecond, c.HolidayLatency)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	rq.Error(err)
}
