package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsiemens/dateutil/app"
	"github.com/tsiemens/dateutil/app/outfmt"
	"github.com/tsiemens/dateutil/config"
	"github.com/tsiemens/dateutil/dateutil"
	"github.com/tsiemens/dateutil/holiday"
	"github.com/tsiemens/dateutil/log"
)

var (
	ConfigFile  string
	DateFormat  string
	Timezone    string
	LatencyMs   int
	CsvDir      string
	AddUnit     string
	WeekdayOnly bool
)

// buildApp merges the config file with any flags the user set.
func buildApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("date-fmt") {
		cfg.DateFormat = DateFormat
	}
	if flags.Changed("tz") {
		loc, err := time.LoadLocation(Timezone)
		if err != nil {
			return nil, fmt.Errorf("Invalid --tz %q: %w", Timezone, err)
		}
		cfg.Location = loc
	}
	if flags.Changed("latency") {
		if LatencyMs < 0 {
			return nil, fmt.Errorf("Invalid --latency %d", LatencyMs)
		}
		cfg.HolidayLatency = time.Duration(LatencyMs) * time.Millisecond
	}
	cfg.Apply()
	log.Fverbosef(os.Stderr, "Using timezone %s, date format %q, holiday latency %v\n",
		cfg.Location, cfg.DateFormat, cfg.HolidayLatency)

	var out outfmt.TableWriter = outfmt.NewSTDWriter(cmd.OutOrStdout())
	if CsvDir != "" {
		csvOut, err := outfmt.NewCSVWriter(CsvDir)
		if err != nil {
			return nil, err
		}
		out = csvOut
	}

	return &app.App{
		Clock:      locatedClock{cfg.Location},
		Location:   cfg.Location,
		DateFormat: cfg.DateFormat,
		Holidays:   holiday.NewLoader(cfg.HolidayProvider()),
		Out:        out,
	}, nil
}

// locatedClock reads the system clock in the configured zone.
type locatedClock struct {
	loc *time.Location
}

func (c locatedClock) Now() time.Time {
	return dateutil.SystemClock{}.Now().In(c.loc)
}

func withApp(run func(a *app.App, ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		return run(a, cmd.Context(), args)
	}
}

func cmdName() string {
	binName := os.Args[0]
	return filepath.Base(binName)
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   cmdName(),
	Short: "Date arithmetic and holiday lookup tool",
	Long: `A cli tool for calendar-aware date arithmetic, date comparisons and
a simulated holiday lookup.

Dates are given in the configured date format (default YYYY-MM-DD) and are
taken as midnight in the configured timezone. RFC 3339 timestamps are also
accepted wherever a date is.`,
	Version:       app.DateUtilVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var yearCmd = &cobra.Command{
	Use:   "year",
	Short: "Print the current calendar year",
	Args:  cobra.NoArgs,
	RunE: withApp(func(a *app.App, _ context.Context, _ []string) error {
		return a.RunYear()
	}),
}

var addCmd = &cobra.Command{
	Use:   "add DATE AMOUNT",
	Short: "Add an amount of a time unit to a date",
	Long: fmt.Sprintf(`Add AMOUNT of --unit to DATE. Negative amounts subtract.
Units: %s`, strings.Join(dateutil.UnitNames(), ", ")),
	Args: cobra.ExactArgs(2),
	RunE: withApp(func(a *app.App, _ context.Context, args []string) error {
		return a.RunAdd(args[0], args[1], AddUnit)
	}),
}

var withinCmd = &cobra.Command{
	Use:   "within DATE FROM TO",
	Short: "Check whether DATE lies strictly between FROM and TO",
	Args:  cobra.ExactArgs(3),
	RunE: withApp(func(a *app.App, _ context.Context, args []string) error {
		return a.RunWithin(args[0], args[1], args[2])
	}),
}

var beforeCmd = &cobra.Command{
	Use:   "before DATE OTHER",
	Short: "Check whether DATE is earlier than OTHER",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(a *app.App, _ context.Context, args []string) error {
		return a.RunBefore(args[0], args[1])
	}),
}

var sameDayCmd = &cobra.Command{
	Use:   "sameday DATE OTHER",
	Short: "Check whether two dates fall on the same calendar day",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(a *app.App, _ context.Context, args []string) error {
		return a.RunSameDay(args[0], args[1], WeekdayOnly)
	}),
}

var holidaysCmd = &cobra.Command{
	Use:   "holidays YEAR...",
	Short: "List the holidays of each YEAR",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(a *app.App, ctx context.Context, args []string) error {
		return a.RunHolidays(ctx, args)
	}),
}

var isHolidayCmd = &cobra.Command{
	Use:   "isholiday DATE...",
	Short: "Check whether each DATE is a holiday",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(a *app.App, ctx context.Context, args []string) error {
		return a.RunIsHoliday(ctx, args)
	}),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		var errPrinter log.ErrorPrinter = &log.StderrErrorPrinter{}
		errPrinter.Ln("Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(onInit)

	// Persistent flags, which are global to the app cli
	RootCmd.PersistentFlags().BoolVarP(&log.VerboseEnabled, "verbose", "v", false,
		"Print verbose output")
	RootCmd.PersistentFlags().StringVar(&ConfigFile, "config", "",
		"YAML config file (keys: timezone, date_format, holiday_latency_ms, log_level, trace)")
	RootCmd.PersistentFlags().StringVar(&DateFormat, "date-fmt", "2006-01-02",
		"Format of how dates are given and printed. Must represent Jan 2, 2006")
	RootCmd.PersistentFlags().StringVar(&Timezone, "tz", "Local",
		"Timezone dates are interpreted in, eg. UTC or America/Toronto")
	RootCmd.PersistentFlags().IntVar(&LatencyMs, "latency", int(holiday.DefaultLatency/time.Millisecond),
		"Simulated holiday lookup latency in milliseconds")
	RootCmd.PersistentFlags().StringVar(&CsvDir, "csv-dir", "",
		"Write results as CSV files into this directory instead of printing tables")

	addCmd.Flags().StringVarP(&AddUnit, "unit", "u", "",
		"Unit of AMOUNT (default days)")
	sameDayCmd.Flags().BoolVar(&WeekdayOnly, "weekday", false,
		"Only compare the day of the week")

	RootCmd.AddCommand(yearCmd, addCmd, withinCmd, beforeCmd, sameDayCmd, holidaysCmd, isHolidayCmd)
}

// onInit performs global actions before running command functions.
func onInit() {
	log.LoadTraceSetting()
}
