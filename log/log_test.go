package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeveledOutput(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(WARNING)

	SetLevel(WARNING)
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	rq.NotContains(buf.String(), "hidden 1")
	rq.Contains(buf.String(), "shown 2")

	SetLevel(DEBUG)
	Debugf("now visible")
	rq.Contains(buf.String(), "now visible")
}

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	lvl, err := ParseLevel("Debug")
	rq.NoError(err)
	rq.Equal(DEBUG, lvl)
	lvl, err = ParseLevel("warn")
	rq.NoError(err)
	rq.Equal(WARNING, lvl)
	_, err = ParseLevel("loud")
	rq.Error(err)
}

func TestTracef(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer func() { TraceSetting = map[string]bool{} }()

	EnableTraceTags("holiday, add")
	Tracef("holiday", "fetching %d", 2026)
	Tracef("other", "not shown")
	rq.Contains(buf.String(), "fetching 2026")
	rq.NotContains(buf.String(), "not shown")
}

func TestTracefIgnoresLevel(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(WARNING)
	defer func() { TraceSetting = map[string]bool{} }()

	SetLevel(ERROR)
	EnableTraceTags("holiday")
	Tracef("holiday", "fetching %d", 2027)
	Warnf("quiet warning")
	rq.Contains(buf.String(), "fetching 2027")
	rq.Contains(buf.String(), "holiday")
	rq.NotContains(buf.String(), "quiet warning")
}

func TestVerbose(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer
	Fverbosef(&buf, "quiet")
	rq.Empty(buf.String())

	VerboseEnabled = true
	defer func() { VerboseEnabled = false }()
	Fverbosef(&buf, "loud %s", "yes")
	rq.Equal("loud yes", buf.String())
}
