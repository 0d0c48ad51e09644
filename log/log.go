package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// This won't be as verbose as tracing, which is likely for testing only.
var VerboseEnabled = false

func Fverbosef(w io.Writer, format string, v ...interface{}) {
	if VerboseEnabled {
		fmt.Fprintf(w, format, v...)
	}
}

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
)

var (
	atomicLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger      = newLogger(os.Stderr, atomicLevel)
	// Enabled trace tags print whatever the level is.
	traceLevel  = zap.LevelEnablerFunc(func(zapcore.Level) bool { return true })
	traceLogger = newLogger(os.Stderr, traceLevel)
)

func newLogger(w io.Writer, enab zapcore.LevelEnabler) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), enab)
	return zap.New(core).Sugar()
}

// SetOutput redirects all leveled and trace logging to w.
func SetOutput(w io.Writer) {
	logger = newLogger(w, atomicLevel)
	traceLogger = newLogger(w, traceLevel)
}

func SetLevel(level Level) {
	switch level {
	case DEBUG:
		atomicLevel.SetLevel(zapcore.DebugLevel)
	case INFO:
		atomicLevel.SetLevel(zapcore.InfoLevel)
	case WARNING:
		atomicLevel.SetLevel(zapcore.WarnLevel)
	default:
		atomicLevel.SetLevel(zapcore.ErrorLevel)
	}
}

// ParseLevel accepts debug, info, warning (or warn) and error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warning", "warn":
		return WARNING, nil
	case "error":
		return ERROR, nil
	}
	return ERROR, fmt.Errorf("Invalid log level %q", s)
}

func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

var (
	traceMu       sync.Mutex
	tracingLoaded = false
)

// Tags enabled. Value ignored
var TraceSetting = map[string]bool{}

// Supply the TRACE environment variable with a comma-separated list of
// trace tags to enable.
func LoadTraceSetting() {
	EnableTraceTags(os.Getenv("TRACE"))
}

// EnableTraceTags enables each tag of a comma-separated list.
func EnableTraceTags(tags string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	tracingLoaded = true
	if tags == "" {
		return
	}
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			TraceSetting[tag] = true
		}
	}
}

func MaybeLoadTraceSetting() {
	traceMu.Lock()
	loaded := tracingLoaded
	traceMu.Unlock()
	if !loaded {
		LoadTraceSetting()
	}
}

func Tracef(tag string, format string, v ...interface{}) {
	MaybeLoadTraceSetting()
	traceMu.Lock()
	_, ok := TraceSetting[tag]
	traceMu.Unlock()
	if ok {
		traceLogger.Desugar().Debug(fmt.Sprintf(format, v...), zap.String("trace", tag))
	}
}

type ErrorPrinter interface {
	Ln(v ...interface{})
	F(format string, v ...interface{})
}

// The default ErrorPrinter
type StderrErrorPrinter struct{}

func (p *StderrErrorPrinter) Ln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}

func (p *StderrErrorPrinter) F(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}
