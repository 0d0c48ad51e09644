package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsiemens/dateutil/date"
	"github.com/tsiemens/dateutil/holiday"
	"github.com/tsiemens/dateutil/log"
)

type Config struct {
	Location       *time.Location
	DateFormat     string
	HolidayLatency time.Duration
	LogLevel       log.Level
	Trace          string
}

func Default() Config {
	return Config{
		Location:       time.Local,
		DateFormat:     date.DefaultFormat,
		HolidayLatency: holiday.DefaultLatency,
		LogLevel:       log.WARNING,
	}
}

// Parse overlays the YAML document in data onto c. Keys that are absent
// keep their current values.
func (c *Config) Parse(data []byte) error {
	var aux struct {
		Timezone         *string `yaml:"timezone"`
		DateFormat       string  `yaml:"date_format"`
		HolidayLatencyMs *int    `yaml:"holiday_latency_ms"`
		LogLevel         string  `yaml:"log_level"`
		Trace            string  `yaml:"trace"`
	}
	if err := yaml.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Parsing config: %w", err)
	}

	if aux.Timezone != nil {
		// "" loads as UTC, "Local" as the system zone.
		loc, err := time.LoadLocation(*aux.Timezone)
		if err != nil {
			return fmt.Errorf("Invalid timezone %q: %w", *aux.Timezone, err)
		}
		c.Location = loc
	}
	if aux.DateFormat != "" {
		c.DateFormat = aux.DateFormat
		warnIfNotDateFormat(c.DateFormat)
	}
	if aux.HolidayLatencyMs != nil {
		if *aux.HolidayLatencyMs < 0 {
			return fmt.Errorf("Invalid holiday_latency_ms %d", *aux.HolidayLatencyMs)
		}
		c.HolidayLatency = time.Duration(*aux.HolidayLatencyMs) * time.Millisecond
	}
	if aux.LogLevel != "" {
		lvl, err := log.ParseLevel(aux.LogLevel)
		if err != nil {
			return err
		}
		c.LogLevel = lvl
	}
	if aux.Trace != "" {
		c.Trace = aux.Trace
	}
	return nil
}

// warnIfNotDateFormat flags formats that carry a time of day or drop part
// of the date. Every date given in one would be rejected.
func warnIfNotDateFormat(dFmt string) {
	sample := time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC).Format(dFmt)
	if d, err := date.Parse(dFmt, sample); err != nil || !d.Equal(date.New(2006, time.January, 2)) {
		log.Warnf("date_format %q does not represent a plain calendar date", dFmt)
	}
}

// Load reads the config file at path on top of the defaults. An empty
// path yields the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("Reading config: %w", err)
	}
	if err := c.Parse(data); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("Loaded config %s", path)
	return c, nil
}

// Apply pushes the logging settings into the log package.
func (c Config) Apply() {
	log.SetLevel(c.LogLevel)
	if c.Trace != "" {
		log.EnableTraceTags(c.Trace)
	}
}

// HolidayProvider builds a provider with the configured latency and zone.
func (c Config) HolidayProvider() *holiday.Provider {
	p := holiday.NewProvider()
	p.Latency = c.HolidayLatency
	p.Location = c.Location
	return p
}
